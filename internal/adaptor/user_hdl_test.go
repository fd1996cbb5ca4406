package adaptor

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"contacts-api/internal/dto/response"
	"contacts-api/internal/usecase"
	"contacts-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserService struct {
	currentOut *response.UserResponse
	avatarOut  *response.AvatarResponse
	err        error
}

func (f *fakeUserService) Current(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.currentOut, nil
}

func (f *fakeUserService) UpdateAvatar(ctx context.Context, userID uuid.UUID, file io.Reader) (*response.AvatarResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.avatarOut, nil
}

func TestCurrentWithoutSession(t *testing.T) {
	h := NewUserHandler(&fakeUserService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/users/current", nil)
	rec := httptest.NewRecorder()
	h.Current(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentReturnsPublicFields(t *testing.T) {
	h := NewUserHandler(&fakeUserService{currentOut: &response.UserResponse{
		Email:        "me@mail.com",
		Subscription: "starter",
	}}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/users/current", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()
	h.Current(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "me@mail.com")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUpdateAvatar(t *testing.T) {
	h := NewUserHandler(&fakeUserService{avatarOut: &response.AvatarResponse{
		AvatarURL: "http://storage.local/avatars/u.jpg",
	}}, zap.NewNop())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPatch, "/users/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()
	h.UpdateAvatar(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http://storage.local/avatars/u.jpg")
}

func TestUpdateAvatarMissingFile(t *testing.T) {
	h := NewUserHandler(&fakeUserService{}, zap.NewNop())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "x"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPatch, "/users/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()
	h.UpdateAvatar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAvatarInvalidImage(t *testing.T) {
	h := NewUserHandler(&fakeUserService{err: usecase.ErrInvalidImage}, zap.NewNop())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", "bad.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPatch, "/users/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()
	h.UpdateAvatar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
