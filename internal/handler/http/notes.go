package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	req, err := requestBody[models.CreateNoteRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.Create(ctx, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	page, err := h.services.NoteService.List(ctx, userID, requestPagination(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	note, err := h.services.NoteService.Get(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	req, err := requestBody[models.UpdateNoteRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.NoteService.Update(ctx, userID, chi.URLParam(r, "id"), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UpdatedResponse{Updated: true}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.services.NoteService.Delete(ctx, userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeletedResponse{Deleted: true}, http.StatusOK)
}
