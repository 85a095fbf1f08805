package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type noteAccessGuard struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteAccessGuard(noteRepository store.NoteRepository, logger *logger.Logger) NoteAccessGuard {
	return &noteAccessGuard{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (g *noteAccessGuard) Authorize(ctx context.Context, userID, noteID string) (models.Note, error) {
	note, err := g.noteRepository.FindNoteByID(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}

	if note.UserID != userID {
		logger.FromContext(ctx).Warn().
			Str("func", "*noteAccessGuard.Authorize").
			Str("note_id", noteID).
			Str("user_id", userID).
			Msg("access to foreign note denied")
		return models.Note{}, ErrAccessDenied
	}

	return note, nil
}
