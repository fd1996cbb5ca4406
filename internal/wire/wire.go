package wire

import (
	"net/http"

	"contacts-api/internal/adaptor"
	"contacts-api/internal/data/repository"
	"contacts-api/internal/usecase"
	"contacts-api/pkg/middleware"
	"contacts-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring connects repositories, collaborators, services and handlers
func Wiring(
	repo *repository.Repository,
	store usecase.AvatarStorage,
	mail usecase.VerificationMailer,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, store, mail, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireContact(r, handler.Contact, repo, logger)
	wireAuth(r, handler.Auth, repo, logger)
	wireUser(r, handler.User, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
