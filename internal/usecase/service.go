package usecase

import (
	"context"
	"io"

	"contacts-api/internal/data/repository"
	"contacts-api/pkg/utils"

	"go.uber.org/zap"
)

// VerificationMailer delivers the verification link during registration.
type VerificationMailer interface {
	SendVerificationEmail(to, token string) error
}

// AvatarStorage stores an uploaded avatar and returns its durable URL.
type AvatarStorage interface {
	UploadAvatar(ctx context.Context, objectName string, r io.Reader) (string, error)
}

type Service struct {
	Auth    AuthService
	User    UserService
	Contact ContactService
}

func NewService(repo *repository.Repository, store AvatarStorage, mail VerificationMailer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, mail, log),
		User:    NewUserService(repo.User, store, log),
		Contact: NewContactService(repo.Contact, log),
	}
}
