package wire

import (
	"contacts-api/internal/adaptor"
	"contacts-api/internal/data/repository"
	"contacts-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireContact configures the contact CRUD routes. The routes are public;
// a bearer token, when present, scopes list/create to the caller.
func wireContact(
	r chi.Router,
	contactHandler *adaptor.ContactHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(middleware.OptionalAuthSession(repo.User, log)).Route("/contacts", func(r chi.Router) {
		r.Get("/", contactHandler.List)
		r.Post("/", contactHandler.Create)
		r.Get("/{id}", contactHandler.GetByID)
		r.Put("/{id}", contactHandler.Update)
		r.Delete("/{id}", contactHandler.Delete)
		r.Patch("/{id}/favorite", contactHandler.UpdateFavorite)
	})
}
