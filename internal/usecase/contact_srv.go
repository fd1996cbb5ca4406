package usecase

import (
	"context"
	"fmt"
	"time"

	"contacts-api/internal/data/entity"
	"contacts-api/internal/data/repository"
	"contacts-api/internal/dto/request"
	"contacts-api/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactService interface {
	List(ctx context.Context, owner *uuid.UUID) ([]response.ContactResponse, error)
	GetByID(ctx context.Context, id string) (*response.ContactResponse, error)
	Create(ctx context.Context, req *request.ContactRequest, owner *uuid.UUID) (*response.ContactResponse, error)
	Update(ctx context.Context, id string, req *request.ContactUpdateRequest) (*response.ContactResponse, error)
	UpdateFavorite(ctx context.Context, id string, favorite bool) (*response.ContactResponse, error)
	Delete(ctx context.Context, id string) error
}

type contactService struct {
	contactRepo repository.ContactRepository
	log         *zap.Logger
}

func NewContactService(contactRepo repository.ContactRepository, log *zap.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		log:         log,
	}
}

func (cs *contactService) List(ctx context.Context, owner *uuid.UUID) ([]response.ContactResponse, error) {
	contacts, err := cs.contactRepo.FindAll(ctx, owner)
	if err != nil {
		cs.log.Error("Failed to list contacts", zap.Error(err))
		return nil, fmt.Errorf("failed to list contacts")
	}

	return response.ContactsToResponse(contacts), nil
}

func (cs *contactService) GetByID(ctx context.Context, id string) (*response.ContactResponse, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		// a malformed id matches no record
		return nil, ErrNotFound
	}

	contact, err := cs.contactRepo.FindByID(ctx, contactID)
	if err != nil {
		cs.log.Error("Failed to get contact", zap.Error(err), zap.String("contact_id", id))
		return nil, fmt.Errorf("failed to get contact")
	}
	if contact == nil {
		return nil, ErrNotFound
	}

	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (cs *contactService) Create(ctx context.Context, req *request.ContactRequest, owner *uuid.UUID) (*response.ContactResponse, error) {
	now := time.Now()
	contact := &entity.Contact{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Favorite: false,
		Owner:    owner,
	}

	if err := cs.contactRepo.Create(ctx, contact); err != nil {
		cs.log.Error("Failed to create contact", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create contact")
	}

	cs.log.Info("Contact created",
		zap.String("contact_id", contact.ID.String()),
		zap.String("name", contact.Name))

	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (cs *contactService) Update(ctx context.Context, id string, req *request.ContactUpdateRequest) (*response.ContactResponse, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	contact, err := cs.contactRepo.Update(ctx, contactID, entity.ContactUpdate{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		cs.log.Error("Failed to update contact", zap.Error(err), zap.String("contact_id", id))
		return nil, fmt.Errorf("failed to update contact")
	}
	if contact == nil {
		return nil, ErrNotFound
	}

	cs.log.Info("Contact updated", zap.String("contact_id", id))

	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (cs *contactService) UpdateFavorite(ctx context.Context, id string, favorite bool) (*response.ContactResponse, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	contact, err := cs.contactRepo.UpdateFavorite(ctx, contactID, favorite)
	if err != nil {
		cs.log.Error("Failed to update favorite status", zap.Error(err), zap.String("contact_id", id))
		return nil, fmt.Errorf("failed to update favorite status")
	}
	if contact == nil {
		return nil, ErrNotFound
	}

	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (cs *contactService) Delete(ctx context.Context, id string) error {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	contact, err := cs.contactRepo.Delete(ctx, contactID)
	if err != nil {
		cs.log.Error("Failed to delete contact", zap.Error(err), zap.String("contact_id", id))
		return fmt.Errorf("failed to delete contact")
	}
	if contact == nil {
		return ErrNotFound
	}

	cs.log.Info("Contact deleted", zap.String("contact_id", id))
	return nil
}
