package repository

import (
	"context"
	"fmt"

	"contacts-api/internal/data/entity"
	"contacts-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByToken(ctx context.Context, token uuid.UUID) (*entity.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*entity.User, error)
	UpdateToken(ctx context.Context, id uuid.UUID, token *uuid.UUID) error
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error
	UpdateVerification(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, email, password, subscription, avatar_url, token,
	       verify, verification_token, created_at, updated_at`

func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password, subscription, avatar_url, token,
		                  verify, verification_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Subscription,
		user.AvatarURL,
		user.Token,
		user.Verify,
		user.VerificationToken,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, id))
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, email))
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (ur *userRepository) FindByToken(ctx context.Context, token uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE token = $1`

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, token))
	if err != nil {
		ur.log.Error("Failed to find user by token", zap.Error(err))
		return nil, fmt.Errorf("find user by token: %w", err)
	}

	return user, nil
}

func (ur *userRepository) FindByVerificationToken(ctx context.Context, token string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE verification_token = $1`

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, token))
	if err != nil {
		ur.log.Error("Failed to find user by verification token", zap.Error(err))
		return nil, fmt.Errorf("find user by verification token: %w", err)
	}

	return user, nil
}

// UpdateToken replaces the active session token; nil logs the user out
func (ur *userRepository) UpdateToken(ctx context.Context, id uuid.UUID, token *uuid.UUID) error {
	query := `UPDATE users SET token = $2, updated_at = NOW() WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id, token)
	if err != nil {
		ur.log.Error("Failed to update user token",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update token for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

func (ur *userRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	query := `UPDATE users SET avatar_url = $2, updated_at = NOW() WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id, avatarURL)
	if err != nil {
		ur.log.Error("Failed to update avatar",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update avatar for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

// UpdateVerification marks the user verified and clears the one-time token
func (ur *userRepository) UpdateVerification(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET verify = TRUE, verification_token = NULL, updated_at = NOW()
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to update verification",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update verification for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

// scanUser maps a single row into a user; no rows is reported as (nil, nil)
func (ur *userRepository) scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Subscription,
		&user.AvatarURL,
		&user.Token,
		&user.Verify,
		&user.VerificationToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
