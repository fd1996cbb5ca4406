package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"contacts-api/internal/data/repository"
	"contacts-api/internal/dto/response"
	"contacts-api/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	Current(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, file io.Reader) (*response.AvatarResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	store    AvatarStorage
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, store AvatarStorage, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		store:    store,
		log:      log,
	}
}

func (us *userService) Current(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get current user")
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID.String(), ErrUnauthorized)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateAvatar(ctx context.Context, userID uuid.UUID, file io.Reader) (*response.AvatarResponse, error) {
	objectName := userID.String() + ".jpg"

	avatarURL, err := us.store.UploadAvatar(ctx, objectName, file)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidImage) {
			return nil, fmt.Errorf("avatar upload: %w", ErrInvalidImage)
		}
		us.log.Error("Failed to upload avatar", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to upload avatar")
	}

	if err := us.userRepo.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		us.log.Error("Failed to persist avatar URL", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update avatar")
	}

	us.log.Info("Avatar updated",
		zap.String("user_id", userID.String()),
		zap.String("avatar_url", avatarURL))

	return &response.AvatarResponse{AvatarURL: avatarURL}, nil
}
