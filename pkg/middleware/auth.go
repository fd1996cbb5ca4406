package middleware

import (
	"context"
	"net/http"
	"strings"

	"contacts-api/internal/data/repository"
	"contacts-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthSession validates the bearer session token and attaches the resolved
// user to the request context. Requests without a matching token get 401.
func AuthSession(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, ok := resolveBearer(r, userRepo, logger)
			if !ok {
				utils.ResponseUnauthorized(w, "Not authorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthSession resolves a bearer token when one is present but lets
// anonymous requests through. Contact routes use it for ownership scoping.
func OptionalAuthSession(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ctx, ok := resolveBearer(r, userRepo, logger); ok {
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func resolveBearer(r *http.Request, userRepo repository.UserRepository, logger *zap.Logger) (context.Context, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	token, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, false
	}

	user, err := userRepo.FindByToken(r.Context(), token)
	if err != nil {
		logger.Error("Failed to resolve session token", zap.Error(err))
		return nil, false
	}
	if user == nil {
		logger.Warn("Unknown session token")
		return nil, false
	}

	ctx := utils.SetUserContext(r.Context(), user.ID)
	ctx = utils.SetTokenContext(ctx, token.String())

	return ctx, true
}
