package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ---- register ----

func TestRegister_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	username := "alice"
	want := models.AuthResponse{ID: testUserID, Username: "alice", Email: "a@x.io", AuthToken: "jwt"}

	mocks.auth.EXPECT().Register(gomock.Any(), models.RegisterRequest{Email: "a@x.io", Password: "secret1", Username: &username}).
		Return(want, nil)

	rec := doRequest(t, h.Init(), http.MethodPost, "/auth/register",
		`{"email":"a@x.io","password":"secret1","username":"alice"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, want, decodeJSON[models.AuthResponse](t, rec))
}

func TestRegister_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "email taken", err: store.ErrEmailAlreadyExists, wantStatus: http.StatusConflict, wantMsg: "email already exists"},
		{name: "hash failure", err: service.ErrPasswordHashing, wantStatus: http.StatusInternalServerError, wantMsg: "internal server error"},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, tt.err)

			rec := doRequest(t, h.Init(), http.MethodPost, "/auth/register",
				models.RegisterRequest{Email: "a@x.io", Password: "secret1"}, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeJSON[models.MessageResponse](t, rec).Message)
		})
	}
}

func TestRegister_ValidationCollectsAllFields(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	rec := doRequest(t, h.Init(), http.MethodPost, "/auth/register",
		`{"email":"not-an-email","password":"123","username":"al"}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeJSON[models.ValidationErrorResponse](t, rec)
	assert.Equal(t, "validation failed", body.Message)
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "password")
	assert.Contains(t, body.Errors, "username")
}

func TestRegister_MalformedJSON(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	rec := doRequest(t, h.Init(), http.MethodPost, "/auth/register", `{"email":`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", decodeJSON[models.MessageResponse](t, rec).Message)
}

// ---- login ----

func TestLogin_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	want := models.AuthResponse{ID: testUserID, Email: "a@x.io", AuthToken: "jwt"}

	mocks.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "a@x.io", Password: "secret1"}).Return(want, nil)

	rec := doRequest(t, h.Init(), http.MethodPost, "/auth/login", models.LoginRequest{Email: "a@x.io", Password: "secret1"}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, decodeJSON[models.AuthResponse](t, rec))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, service.ErrInvalidCredentials)

	rec := doRequest(t, h.Init(), http.MethodPost, "/auth/login", models.LoginRequest{Email: "a@x.io", Password: "secret1"}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", decodeJSON[models.MessageResponse](t, rec).Message)
}

func TestLogin_MissingFields(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h.Init(), http.MethodPost, "/auth/login", `{}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeJSON[models.ValidationErrorResponse](t, rec)
	assert.Equal(t, []string{"Password is required"}, body.Errors["password"])
	assert.Equal(t, []string{"Email is required"}, body.Errors["email"])
}

// ---- current-session ----

func TestCurrentSession_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	session := models.Session{
		Email:     "a@x.io",
		IssuedAt:  testNow.Add(-time.Hour),
		ExpiresAt: testNow.Add(23 * time.Hour),
		UserID:    testUserID,
		Username:  "alice",
	}

	expectAuthenticated(mocks)
	mocks.auth.EXPECT().CurrentSession(gomock.Any(), testUserID, testToken).Return(session, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/auth/current-session", nil, validBearer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session, decodeJSON[models.Session](t, rec))
}

func TestCurrentSession_MissingHeaderIsValidationError(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.tokens.EXPECT().Verify(gomock.Any(), gomock.Any()).Times(0)

	rec := doRequest(t, h.Init(), http.MethodGet, "/auth/current-session", nil, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Auth token is required"},
		decodeJSON[models.ValidationErrorResponse](t, rec).Errors["authorization"])
}

func TestCurrentSession_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "user removed", err: service.ErrUnknownUser, wantStatus: http.StatusForbidden},
		{name: "timestamps", err: service.ErrTokenTimestamps, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			expectAuthenticated(mocks)
			mocks.auth.EXPECT().CurrentSession(gomock.Any(), testUserID, testToken).Return(models.Session{}, tt.err)

			rec := doRequest(t, h.Init(), http.MethodGet, "/auth/current-session", nil, validBearer)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
