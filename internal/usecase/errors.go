package usecase

import (
	"errors"
	"fmt"
)

// Domain failures handlers translate to transport statuses via errors.Is,
// keeping HTTP concerns out of the services.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already registered")
	ErrUnauthorized = errors.New("not authorized")
	ErrInvalidImage = errors.New("invalid image file")

	ErrInvalidCredentials = fmt.Errorf("email or password is wrong: %w", ErrUnauthorized)
	ErrNotVerified        = fmt.Errorf("email is not verified: %w", ErrUnauthorized)
)
