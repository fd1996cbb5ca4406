package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"contacts-api/internal/dto/request"
	"contacts-api/internal/usecase"
	"contacts-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// List handles GET /contacts
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	// Scope to the caller when a valid bearer token accompanied the request
	var owner *uuid.UUID
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		owner = &userID
	}

	contacts, err := h.service.List(r.Context(), owner)
	if err != nil {
		h.handleServiceError(w, err, "list contacts")
		return
	}

	utils.ResponseSuccess(w, "success", contacts)
}

// GetByID handles GET /contacts/{id}
func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")

	contact, err := h.service.GetByID(r.Context(), contactID)
	if err != nil {
		h.handleServiceError(w, err, "get contact")
		return
	}

	utils.ResponseSuccess(w, "success", contact)
}

// Create handles POST /contacts
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if field, errs := utils.ValidateStruct(req); field != "" {
		utils.ResponseBadRequest(w, fmt.Sprintf("missing required %s field", field), errs)
		return
	}

	var owner *uuid.UUID
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		owner = &userID
	}

	contact, err := h.service.Create(r.Context(), &req, owner)
	if err != nil {
		h.handleServiceError(w, err, "create contact")
		return
	}

	utils.ResponseCreated(w, "Contact created", contact)
}

// Update handles PUT /contacts/{id}
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")

	var req request.ContactUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// An empty body is rejected before schema validation runs
	if req.IsEmpty() {
		utils.ResponseBadRequest(w, "missing fields", nil)
		return
	}

	if field, errs := utils.ValidateStruct(req); field != "" {
		utils.ResponseBadRequest(w, fmt.Sprintf("missing required %s field", field), errs)
		return
	}

	contact, err := h.service.Update(r.Context(), contactID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update contact")
		return
	}

	utils.ResponseSuccess(w, "Contact updated", contact)
}

// UpdateFavorite handles PATCH /contacts/{id}/favorite
func (h *ContactHandler) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")

	var req request.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if field, errs := utils.ValidateStruct(req); field != "" {
		utils.ResponseBadRequest(w, fmt.Sprintf("missing required %s field", field), errs)
		return
	}

	contact, err := h.service.UpdateFavorite(r.Context(), contactID, *req.Favorite)
	if err != nil {
		h.handleServiceError(w, err, "update favorite status")
		return
	}

	utils.ResponseSuccess(w, "Favorite status updated", contact)
}

// Delete handles DELETE /contacts/{id}
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), contactID); err != nil {
		h.handleServiceError(w, err, "delete contact")
		return
	}

	utils.ResponseSuccess(w, "contact deleted", nil)
}

func (h *ContactHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Not found")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
