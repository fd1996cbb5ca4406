package wire

import (
	"contacts-api/internal/adaptor"
	"contacts-api/internal/data/repository"
	"contacts-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures the authenticated account routes
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(middleware.AuthSession(repo.User, log)).Group(func(r chi.Router) {
		r.Get("/users/current", userHandler.Current)
		r.Patch("/users/avatar", userHandler.UpdateAvatar)
	})
}
