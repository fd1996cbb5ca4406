package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacts-api/internal/dto/request"
	"contacts-api/internal/dto/response"
	"contacts-api/internal/usecase"
	"contacts-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- helpers ---

type fakeContactService struct {
	listOut []response.ContactResponse
	getOut  *response.ContactResponse
	err     error
}

func (f *fakeContactService) List(ctx context.Context, owner *uuid.UUID) ([]response.ContactResponse, error) {
	return f.listOut, f.err
}

func (f *fakeContactService) GetByID(ctx context.Context, id string) (*response.ContactResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.getOut, nil
}

func (f *fakeContactService) Create(ctx context.Context, req *request.ContactRequest, owner *uuid.UUID) (*response.ContactResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response.ContactResponse{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}, nil
}

func (f *fakeContactService) Update(ctx context.Context, id string, req *request.ContactUpdateRequest) (*response.ContactResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.getOut, nil
}

func (f *fakeContactService) UpdateFavorite(ctx context.Context, id string, favorite bool) (*response.ContactResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := *f.getOut
	out.Favorite = favorite
	return &out, nil
}

func (f *fakeContactService) Delete(ctx context.Context, id string) error {
	return f.err
}

func newContactRouter(svc usecase.ContactService) *chi.Mux {
	h := NewContactHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/contacts", h.List)
	r.Post("/contacts", h.Create)
	r.Get("/contacts/{id}", h.GetByID)
	r.Put("/contacts/{id}", h.Update)
	r.Delete("/contacts/{id}", h.Delete)
	r.Patch("/contacts/{id}/favorite", h.UpdateFavorite)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp utils.Response
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

// --- tests ---

func TestCreateContactSuccess(t *testing.T) {
	router := newContactRouter(&fakeContactService{})

	rec, resp := doJSON(t, router, http.MethodPost, "/contacts",
		`{"name":"Allison","email":"allison@mail.com","phone":"(992) 914-3792"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Allison", data["name"])
	assert.Equal(t, "allison@mail.com", data["email"])
	assert.Equal(t, "(992) 914-3792", data["phone"])
}

func TestCreateContactMissingField(t *testing.T) {
	router := newContactRouter(&fakeContactService{})

	tests := []struct {
		body      string
		wantField string
	}{
		{`{"email":"a@mail.com","phone":"(992) 914-3792"}`, "name"},
		{`{"name":"A","phone":"(992) 914-3792"}`, "email"},
		{`{"name":"A","email":"a@mail.com"}`, "phone"},
		{`{"name":"A","email":"a@mail.com","phone":"12345"}`, "phone"},
	}

	for _, tt := range tests {
		rec, resp := doJSON(t, router, http.MethodPost, "/contacts", tt.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "missing required "+tt.wantField+" field", resp.Message)
	}
}

func TestUpdateContactEmptyBody(t *testing.T) {
	// empty body fails before the service is consulted, for any id
	router := newContactRouter(&fakeContactService{err: usecase.ErrNotFound})

	rec, resp := doJSON(t, router, http.MethodPut, "/contacts/"+uuid.New().String(), `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing fields", resp.Message)
}

func TestUpdateContactInvalidField(t *testing.T) {
	router := newContactRouter(&fakeContactService{})

	rec, resp := doJSON(t, router, http.MethodPut, "/contacts/"+uuid.New().String(),
		`{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing required email field", resp.Message)
}

func TestUpdateContactNotFound(t *testing.T) {
	router := newContactRouter(&fakeContactService{err: usecase.ErrNotFound})

	rec, resp := doJSON(t, router, http.MethodPut, "/contacts/"+uuid.New().String(),
		`{"name":"Somebody"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", resp.Message)
}

func TestGetContactNotFound(t *testing.T) {
	router := newContactRouter(&fakeContactService{err: usecase.ErrNotFound})

	rec, resp := doJSON(t, router, http.MethodGet, "/contacts/"+uuid.New().String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", resp.Message)
}

func TestDeleteContact(t *testing.T) {
	router := newContactRouter(&fakeContactService{})

	rec, resp := doJSON(t, router, http.MethodDelete, "/contacts/"+uuid.New().String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "contact deleted", resp.Message)
}

func TestDeleteContactNotFound(t *testing.T) {
	router := newContactRouter(&fakeContactService{err: usecase.ErrNotFound})

	rec, _ := doJSON(t, router, http.MethodDelete, "/contacts/"+uuid.New().String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateFavorite(t *testing.T) {
	svc := &fakeContactService{getOut: &response.ContactResponse{
		ID: uuid.New().String(), Name: "Eve", Email: "eve@mail.com", Phone: "(321) 654-0987",
	}}
	router := newContactRouter(svc)

	rec, resp := doJSON(t, router, http.MethodPatch, "/contacts/"+svc.getOut.ID+"/favorite",
		`{"favorite":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["favorite"])
}

func TestUpdateFavoriteMissingField(t *testing.T) {
	router := newContactRouter(&fakeContactService{})

	rec, resp := doJSON(t, router, http.MethodPatch, "/contacts/"+uuid.New().String()+"/favorite", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing required favorite field", resp.Message)
}

func TestListContacts(t *testing.T) {
	svc := &fakeContactService{listOut: []response.ContactResponse{
		{ID: uuid.New().String(), Name: "A"},
		{ID: uuid.New().String(), Name: "B"},
	}}
	router := newContactRouter(svc)

	rec, resp := doJSON(t, router, http.MethodGet, "/contacts", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}
