package usecase

import (
	"context"
	"testing"

	"contacts-api/internal/data/entity"
	"contacts-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- helpers ---

type fakeContactRepo struct {
	contacts map[uuid.UUID]*entity.Contact
	err      error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[uuid.UUID]*entity.Contact)}
}

func (f *fakeContactRepo) FindAll(ctx context.Context, owner *uuid.UUID) ([]*entity.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Contact
	for _, c := range f.contacts {
		if owner == nil || (c.Owner != nil && *c.Owner == *owner) {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.contacts[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	if f.err != nil {
		return f.err
	}
	copied := *contact
	f.contacts[contact.ID] = &copied
	return nil
}

func (f *fakeContactRepo) Update(ctx context.Context, id uuid.UUID, fields entity.ContactUpdate) (*entity.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.contacts[id]
	if !ok {
		return nil, nil
	}
	if fields.Name != nil {
		c.Name = *fields.Name
	}
	if fields.Email != nil {
		c.Email = *fields.Email
	}
	if fields.Phone != nil {
		c.Phone = *fields.Phone
	}
	copied := *c
	return &copied, nil
}

func (f *fakeContactRepo) UpdateFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*entity.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.contacts[id]
	if !ok {
		return nil, nil
	}
	c.Favorite = favorite
	copied := *c
	return &copied, nil
}

func (f *fakeContactRepo) Delete(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.contacts[id]
	if !ok {
		return nil, nil
	}
	delete(f.contacts, id)
	return c, nil
}

func newContactService(repo *fakeContactRepo) ContactService {
	return NewContactService(repo, zap.NewNop())
}

func strPtr(s string) *string { return &s }

// --- tests ---

func TestContactCreateReturnsInput(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)

	req := &request.ContactRequest{
		Name:  "Allison Black",
		Email: "allison@mail.com",
		Phone: "(992) 914-3792",
	}

	created, err := svc.Create(context.Background(), req, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, req.Name, created.Name)
	assert.Equal(t, req.Email, created.Email)
	assert.Equal(t, req.Phone, created.Phone)
	assert.False(t, created.Favorite)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestContactCreateRecordsOwner(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)

	owner := uuid.New()
	created, err := svc.Create(context.Background(), &request.ContactRequest{
		Name:  "Bob",
		Email: "bob@mail.com",
		Phone: "(111) 222-3333",
	}, &owner)
	require.NoError(t, err)

	require.NotNil(t, created.Owner)
	assert.Equal(t, owner.String(), *created.Owner)
}

func TestContactGetAbsent(t *testing.T) {
	svc := newContactService(newFakeContactRepo())

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)

	// malformed id matches no record either
	_, err = svc.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactDelete(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)

	err := svc.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := svc.Create(context.Background(), &request.ContactRequest{
		Name:  "Carol",
		Email: "carol@mail.com",
		Phone: "(123) 456-7890",
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactUpdateMergesFields(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)

	created, err := svc.Create(context.Background(), &request.ContactRequest{
		Name:  "Dave",
		Email: "dave@mail.com",
		Phone: "(123) 456-7890",
	}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &request.ContactUpdateRequest{
		Name: strPtr("David"),
	})
	require.NoError(t, err)

	assert.Equal(t, "David", updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Phone, updated.Phone)
}

func TestContactUpdateAbsent(t *testing.T) {
	svc := newContactService(newFakeContactRepo())

	_, err := svc.Update(context.Background(), uuid.New().String(), &request.ContactUpdateRequest{
		Name: strPtr("Nobody"),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFavoriteRoundTrip(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)

	created, err := svc.Create(context.Background(), &request.ContactRequest{
		Name:  "Eve",
		Email: "eve@mail.com",
		Phone: "(321) 654-0987",
	}, nil)
	require.NoError(t, err)

	on, err := svc.UpdateFavorite(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, on.Favorite)

	// only the favorite flag changes
	assert.Equal(t, created.Name, on.Name)
	assert.Equal(t, created.Email, on.Email)
	assert.Equal(t, created.Phone, on.Phone)

	off, err := svc.UpdateFavorite(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, off.Favorite)
}

func TestContactListScopedToOwner(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)

	owner := uuid.New()
	other := uuid.New()

	_, err := svc.Create(context.Background(), &request.ContactRequest{
		Name: "Mine", Email: "mine@mail.com", Phone: "(111) 111-1111",
	}, &owner)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &request.ContactRequest{
		Name: "Theirs", Email: "theirs@mail.com", Phone: "(222) 222-2222",
	}, &other)
	require.NoError(t, err)

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.List(context.Background(), &owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Name)
}
