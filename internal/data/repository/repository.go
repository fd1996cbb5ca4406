package repository

import (
	"contacts-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Contact ContactRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Contact: NewContactRepository(db, log),
	}
}
