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

type ContactRepository interface {
	FindAll(ctx context.Context, owner *uuid.UUID) ([]*entity.Contact, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	Create(ctx context.Context, contact *entity.Contact) error
	Update(ctx context.Context, id uuid.UUID, fields entity.ContactUpdate) (*entity.Contact, error)
	UpdateFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*entity.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

const contactColumns = `id, name, email, phone, favorite, owner, created_at, updated_at`

// FindAll lists contacts, optionally scoped to an owner
func (cr *contactRepository) FindAll(ctx context.Context, owner *uuid.UUID) ([]*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at`
	args := []any{}
	if owner != nil {
		query = `SELECT ` + contactColumns + ` FROM contacts WHERE owner = $1 ORDER BY created_at`
		args = append(args, *owner)
	}

	rows, err := cr.db.Query(ctx, query, args...)
	if err != nil {
		cr.log.Error("Failed to list contacts", zap.Error(err))
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*entity.Contact
	for rows.Next() {
		var contact entity.Contact
		err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Phone,
			&contact.Favorite,
			&contact.Owner,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		)
		if err != nil {
			cr.log.Error("Failed to scan contact row", zap.Error(err))
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		contacts = append(contacts, &contact)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate contact rows: %w", err)
	}

	return contacts, nil
}

func (cr *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	contact, err := cr.scanContact(cr.db.QueryRow(ctx, query, id))
	if err != nil {
		cr.log.Error("Failed to find contact by ID",
			zap.Error(err),
			zap.String("contact_id", id.String()),
		)
		return nil, fmt.Errorf("find contact by ID %s: %w", id.String(), err)
	}

	return contact, nil
}

func (cr *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, phone, favorite, owner, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := cr.db.Exec(ctx, query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Favorite,
		contact.Owner,
		contact.CreatedAt,
		contact.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to create contact",
			zap.Error(err),
			zap.String("name", contact.Name),
		)
		return fmt.Errorf("create contact %s: %w", contact.Name, err)
	}

	return nil
}

// Update merges the provided fields into the stored record; the single
// UPDATE keeps the merge atomic per record.
func (cr *contactRepository) Update(ctx context.Context, id uuid.UUID, fields entity.ContactUpdate) (*entity.Contact, error) {
	query := `
		UPDATE contacts
		SET name = COALESCE($2, name),
		    email = COALESCE($3, email),
		    phone = COALESCE($4, phone),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + contactColumns

	contact, err := cr.scanContact(cr.db.QueryRow(ctx, query, id, fields.Name, fields.Email, fields.Phone))
	if err != nil {
		cr.log.Error("Failed to update contact",
			zap.Error(err),
			zap.String("contact_id", id.String()),
		)
		return nil, fmt.Errorf("update contact %s: %w", id.String(), err)
	}

	return contact, nil
}

func (cr *contactRepository) UpdateFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*entity.Contact, error) {
	query := `
		UPDATE contacts
		SET favorite = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + contactColumns

	contact, err := cr.scanContact(cr.db.QueryRow(ctx, query, id, favorite))
	if err != nil {
		cr.log.Error("Failed to update favorite status",
			zap.Error(err),
			zap.String("contact_id", id.String()),
		)
		return nil, fmt.Errorf("update favorite for contact %s: %w", id.String(), err)
	}

	return contact, nil
}

// Delete removes the record and returns it, or (nil, nil) when absent
func (cr *contactRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	query := `DELETE FROM contacts WHERE id = $1 RETURNING ` + contactColumns

	contact, err := cr.scanContact(cr.db.QueryRow(ctx, query, id))
	if err != nil {
		cr.log.Error("Failed to delete contact",
			zap.Error(err),
			zap.String("contact_id", id.String()),
		)
		return nil, fmt.Errorf("delete contact %s: %w", id.String(), err)
	}

	return contact, nil
}

// scanContact maps a single row into a contact; no rows is reported as (nil, nil)
func (cr *contactRepository) scanContact(row pgx.Row) (*entity.Contact, error) {
	var contact entity.Contact
	err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Favorite,
		&contact.Owner,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &contact, nil
}
