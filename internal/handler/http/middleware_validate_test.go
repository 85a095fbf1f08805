package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func TestDecodeBody(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		var req models.CreateNoteRequest
		typeErrs, err := decodeBody(strings.NewReader(""), &req)

		require.NoError(t, err)
		assert.Empty(t, typeErrs)
		assert.Equal(t, models.CreateNoteRequest{}, req)
	})

	t.Run("wrong field type", func(t *testing.T) {
		var req models.LoginRequest
		typeErrs, err := decodeBody(strings.NewReader(`{"email":["a"],"password":"secret1"}`), &req)

		require.NoError(t, err)
		assert.Equal(t, validators.FieldErrors{"email": {"Email must be a string"}}, typeErrs)
	})

	t.Run("syntax error", func(t *testing.T) {
		var req models.LoginRequest
		_, err := decodeBody(strings.NewReader(`{"email":`), &req)

		assert.Error(t, err)
	})

	t.Run("array body", func(t *testing.T) {
		var req models.UpdateNoteRequest
		_, err := decodeBody(strings.NewReader(`[1,2]`), &req)

		assert.Error(t, err)
	})
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Title", capitalize("title"))
	assert.Equal(t, "Email", capitalize("Email"))
}

func TestValidate_StoresBodyAndPagination(t *testing.T) {
	h, _ := newTestHandler(t)

	var (
		gotBody       models.CreateNoteRequest
		gotBodyErr    error
		gotPagination models.Pagination
	)
	router := chi.NewRouter()
	router.With(h.validate(requestValidation{
		validator: h.noteValidator,
		listQuery: true,
		newBody:   func() any { return &models.CreateNoteRequest{} },
	})).Post("/", func(w http.ResponseWriter, r *http.Request) {
		gotBody, gotBodyErr = requestBody[models.CreateNoteRequest](r)
		gotPagination = requestPagination(r)
		w.WriteHeader(http.StatusNoContent)
	})

	rec := doRequest(t, router, http.MethodPost, "/?page=2", `{"title":"Groceries"}`, "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NoError(t, gotBodyErr)
	assert.Equal(t, models.CreateNoteRequest{Title: "Groceries"}, gotBody)
	assert.Equal(t, models.Pagination{Page: 2, Limit: models.DefaultLimit}, gotPagination)
}

func TestValidate_AggregatesEveryRequestPart(t *testing.T) {
	h, _ := newTestHandler(t)
	called := false

	router := chi.NewRouter()
	router.With(h.validate(requestValidation{
		header:    true,
		validator: h.noteValidator,
		noteID:    true,
		newBody:   func() any { return &models.UpdateNoteRequest{} },
	})).Patch("/notes/{id}", func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := doRequest(t, router, http.MethodPatch, "/notes/not-a-uuid", `{"title":"ab","content":7}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)

	body := decodeJSON[models.ValidationErrorResponse](t, rec)
	assert.Equal(t, "validation failed", body.Message)
	assert.Equal(t, map[string][]string{
		"authorization": {"Auth token is required"},
		"id":            {"Invalid note ID"},
		"title":         {"Title must be at least 3 characters"},
		"content":       {"Content must be a string"},
	}, body.Errors)
}

func TestValidate_BodyFieldScope(t *testing.T) {
	h, _ := newTestHandler(t)

	router := chi.NewRouter()
	router.With(h.validate(requestValidation{
		validator: h.noteValidator,
		newBody:   func() any { return &models.UpdateNoteRequest{} },
		fields:    []string{validators.FieldContent},
	})).Patch("/", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	rec := doRequest(t, router, http.MethodPatch, "/", `{"title":"ab","content":"ok"}`, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodPatch, "/", `{"title":"ab","content":"x"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string][]string{
		"content": {"If provided, content must have at least 3 characters"},
	}, decodeJSON[models.ValidationErrorResponse](t, rec).Errors)
}

func TestValidate_MalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	router := chi.NewRouter()
	router.With(h.validate(requestValidation{
		validator: h.authValidator,
		newBody:   func() any { return &models.LoginRequest{} },
	})).Post("/", func(w http.ResponseWriter, r *http.Request) {})

	rec := doRequest(t, router, http.MethodPost, "/", `not json`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", decodeJSON[models.MessageResponse](t, rec).Message)
}

func TestRequestBody_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	_, err := requestBody[models.LoginRequest](req)

	assert.ErrorIs(t, err, errUnexpectedRequestBody)
}

func TestRequestPagination_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Equal(t, models.Pagination{Page: models.DefaultPage, Limit: models.DefaultLimit}, requestPagination(req))
}
