package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func testNote() models.Note {
	return models.Note{
		NoteID:    testNoteID,
		UserID:    testUserID,
		Title:     "Groceries",
		Content:   "milk, eggs",
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

// ---- create ----

func TestCreateNote_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	content := "milk, eggs"

	expectAuthenticated(mocks)
	mocks.notes.EXPECT().Create(gomock.Any(), testUserID, models.CreateNoteRequest{Title: "Groceries", Content: &content}).
		Return(testNote(), nil)

	rec := doRequest(t, h.Init(), http.MethodPost, "/notes", `{"title":"Groceries","content":"milk, eggs"}`, validBearer)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, testNote(), decodeJSON[models.Note](t, rec))
}

func TestCreateNote_Validation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{name: "missing title", body: `{"content":"body"}`, wantField: "title", wantMsg: "Title is required"},
		{name: "short title", body: `{"title":"ab"}`, wantField: "title", wantMsg: "Title must be at least 3 characters"},
		{name: "title of wrong type", body: `{"title":123}`, wantField: "title", wantMsg: "Title must be a string"},
		{name: "short content", body: `{"title":"Title","content":"  a  "}`, wantField: "content", wantMsg: "If provided, content must have at least 3 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.notes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			mocks.tokens.EXPECT().Verify(gomock.Any(), gomock.Any()).Times(0)

			rec := doRequest(t, h.Init(), http.MethodPost, "/notes", tt.body, validBearer)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, []string{tt.wantMsg}, decodeJSON[models.ValidationErrorResponse](t, rec).Errors[tt.wantField])
		})
	}
}

func TestCreateNote_UnknownUser(t *testing.T) {
	h, mocks := newTestHandler(t)

	expectAuthenticated(mocks)
	mocks.notes.EXPECT().Create(gomock.Any(), testUserID, gomock.Any()).Return(models.Note{}, service.ErrUnknownUser)

	rec := doRequest(t, h.Init(), http.MethodPost, "/notes", `{"title":"Groceries"}`, validBearer)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ---- list ----

func TestListNotes_DefaultPagination(t *testing.T) {
	h, mocks := newTestHandler(t)
	page := models.NotesPage{Data: models.NotesData{Notes: []models.Note{testNote()}}, Page: 1, Limit: 10, TotalPages: 1}

	expectAuthenticated(mocks)
	mocks.notes.EXPECT().List(gomock.Any(), testUserID, models.Pagination{Page: 1, Limit: 10}).Return(page, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/notes", nil, validBearer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, page, decodeJSON[models.NotesPage](t, rec))
}

func TestListNotes_ExplicitPagination(t *testing.T) {
	h, mocks := newTestHandler(t)

	expectAuthenticated(mocks)
	mocks.notes.EXPECT().List(gomock.Any(), testUserID, models.Pagination{Page: 3, Limit: 25}).
		Return(models.NotesPage{Data: models.NotesData{Notes: []models.Note{}}, Page: 3, Limit: 25, TotalPages: 4}, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/notes?page=3&limit=25", nil, validBearer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"notes":[]},"page":3,"limit":25,"totalPages":4}`, rec.Body.String())
}

func TestListNotes_InvalidQuery(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.notes.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	router := h.Init()

	for _, query := range []string{"page=0", "page=-1", "page=abc", "limit=101", "limit=1.5"} {
		rec := doRequest(t, router, http.MethodGet, "/notes?"+query, nil, validBearer)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestListNotes_PageOutOfRange(t *testing.T) {
	h, mocks := newTestHandler(t)

	expectAuthenticated(mocks)
	mocks.notes.EXPECT().List(gomock.Any(), testUserID, gomock.Any()).Return(models.NotesPage{}, service.ErrPageOutOfRange)

	rec := doRequest(t, h.Init(), http.MethodGet, "/notes?page=9", nil, validBearer)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "page is out of range", decodeJSON[models.MessageResponse](t, rec).Message)
}

// ---- get / update / delete ----

func TestGetNote(t *testing.T) {
	tests := []struct {
		name       string
		note       models.Note
		err        error
		wantStatus int
	}{
		{name: "owner", note: testNote(), wantStatus: http.StatusOK},
		{name: "missing", err: store.ErrNoteNotFound, wantStatus: http.StatusNotFound},
		{name: "not owner", err: service.ErrAccessDenied, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			expectAuthenticated(mocks)
			mocks.notes.EXPECT().Get(gomock.Any(), testUserID, testNoteID).Return(tt.note, tt.err)

			rec := doRequest(t, h.Init(), http.MethodGet, "/notes/"+testNoteID, nil, validBearer)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Equal(t, tt.note, decodeJSON[models.Note](t, rec))
			}
		})
	}
}

func TestNoteRoutes_InvalidID(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		rec := doRequest(t, router, method, "/notes/42", `{}`, validBearer)

		require.Equal(t, http.StatusBadRequest, rec.Code, method)
		assert.Equal(t, []string{"Invalid note ID"}, decodeJSON[models.ValidationErrorResponse](t, rec).Errors["id"])
	}
}

func TestUpdateNote_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	expectAuthenticated(mocks)
	mocks.notes.EXPECT().Update(gomock.Any(), testUserID, testNoteID, map[string]any{"title": "Renamed", "pinned": true}).Return(nil)

	rec := doRequest(t, h.Init(), http.MethodPatch, "/notes/"+testNoteID, `{"title":"Renamed","pinned":true}`, validBearer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated":true}`, rec.Body.String())
}

func TestUpdateNote_NonStringContent(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.notes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rec := doRequest(t, h.Init(), http.MethodPatch, "/notes/"+testNoteID, `{"content":42}`, validBearer)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Content must be a string"}, decodeJSON[models.ValidationErrorResponse](t, rec).Errors["content"])
}

func TestUpdateNote_NotOwner(t *testing.T) {
	h, mocks := newTestHandler(t)

	expectAuthenticated(mocks)
	mocks.notes.EXPECT().Update(gomock.Any(), testUserID, testNoteID, gomock.Any()).Return(service.ErrAccessDenied)

	rec := doRequest(t, h.Init(), http.MethodPatch, "/notes/"+testNoteID, `{"title":"Renamed"}`, validBearer)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteNote(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	expectAuthenticated(mocks)
	expectAuthenticated(mocks)
	gomock.InOrder(
		mocks.notes.EXPECT().Delete(gomock.Any(), testUserID, testNoteID).Return(nil),
		mocks.notes.EXPECT().Delete(gomock.Any(), testUserID, testNoteID).Return(store.ErrNoteNotFound),
	)

	rec := doRequest(t, router, http.MethodDelete, "/notes/"+testNoteID, nil, validBearer)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodDelete, "/notes/"+testNoteID, nil, validBearer)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "note not found", decodeJSON[models.MessageResponse](t, rec).Message)
}
