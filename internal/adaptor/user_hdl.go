package adaptor

import (
	"errors"
	"net/http"

	"contacts-api/internal/usecase"
	"contacts-api/pkg/utils"

	"go.uber.org/zap"
)

// maxAvatarSize caps multipart memory for avatar uploads
const maxAvatarSize = 5 << 20 // 5 MB

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Current handles GET /users/current
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authorized")
		return
	}

	user, err := h.service.Current(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get current user")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// UpdateAvatar handles PATCH /users/avatar
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authorized")
		return
	}

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		utils.ResponseBadRequest(w, "missing required avatar file", nil)
		return
	}
	defer file.Close()

	avatar, err := h.service.UpdateAvatar(r.Context(), userID, file)
	if err != nil {
		h.handleServiceError(w, err, "update avatar")
		return
	}

	utils.ResponseSuccess(w, "Avatar updated", avatar)
}

func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		h.log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Not authorized")

	case errors.Is(err, usecase.ErrInvalidImage):
		h.log.Warn(operation+" failed - invalid image", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid image file", nil)

	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Not found")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
