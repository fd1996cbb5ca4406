package wire

import (
	"contacts-api/internal/adaptor"
	"contacts-api/internal/data/repository"
	"contacts-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/users/register", authHandler.Register)
	r.Post("/users/login", authHandler.Login)
	r.Get("/users/verify/{token}", authHandler.Verify)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.User, log)).Post("/users/logout", authHandler.Logout)
}
