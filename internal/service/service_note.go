package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteService implements NoteService. Every single-note operation resolves
// the note through the access guard before touching it.
type noteService struct {
	noteRepository store.NoteRepository
	userRepository store.UserRepository
	guard          NoteAccessGuard

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, userRepository store.UserRepository, guard NoteAccessGuard, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		userRepository: userRepository,
		guard:          guard,
		logger:         logger,
	}
}

// Create stores a new note owned by userID. Content is trimmed and defaults
// to an empty string.
func (s *noteService) Create(ctx context.Context, userID string, req models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return models.Note{}, err
	}

	note := models.Note{UserID: userID, Title: req.Title}
	if req.Content != nil {
		note.Content = strings.TrimSpace(*req.Content)
	}

	created, err := s.noteRepository.CreateNote(ctx, note)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Note{}, ErrUnknownUser
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// List returns one page of the user's notes. A user without notes gets an
// empty page with zero total pages; otherwise a page past the last one is
// ErrPageOutOfRange.
func (s *noteService) List(ctx context.Context, userID string, page models.Pagination) (models.NotesPage, error) {
	log := logger.FromContext(ctx)

	if page.Page < 1 || page.Limit < 1 || page.Limit > models.MaxLimit {
		return models.NotesPage{}, ErrInvalidDataProvided
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return models.NotesPage{}, err
	}

	total, err := s.noteRepository.CountNotes(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("counting notes failed")
		return models.NotesPage{}, fmt.Errorf("counting notes failed: %w", err)
	}

	result := models.NotesPage{
		Data:       models.NotesData{Notes: []models.Note{}},
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages(total),
	}

	if result.TotalPages == 0 {
		return result, nil
	}
	if page.Page > result.TotalPages {
		return models.NotesPage{}, ErrPageOutOfRange
	}

	notes, err := s.noteRepository.ListNotes(ctx, userID, page)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("listing notes failed")
		return models.NotesPage{}, fmt.Errorf("listing notes failed: %w", err)
	}
	result.Data.Notes = notes

	return result, nil
}

func (s *noteService) Get(ctx context.Context, userID, noteID string) (models.Note, error) {
	return s.guard.Authorize(ctx, userID, noteID)
}

// Update applies the whitelisted subset of fields. A payload with nothing to
// change leaves the note untouched and still succeeds.
func (s *noteService) Update(ctx context.Context, userID, noteID string, fields map[string]any) error {
	if _, err := s.guard.Authorize(ctx, userID, noteID); err != nil {
		return err
	}

	filtered := utils.FilterFields(fields, models.NoteUpdatableFields...)
	if len(filtered) == 0 {
		return nil
	}

	if content, ok := filtered[models.NoteFieldContent].(string); ok {
		filtered[models.NoteFieldContent] = strings.TrimSpace(content)
	}

	if err := s.noteRepository.UpdateNote(ctx, noteID, filtered); err != nil {
		logger.FromContext(ctx).Err(err).Str("note_id", noteID).Msg("note update ended with error")
		return fmt.Errorf("note update ended with error: %w", err)
	}

	return nil
}

func (s *noteService) Delete(ctx context.Context, userID, noteID string) error {
	if _, err := s.guard.Authorize(ctx, userID, noteID); err != nil {
		return err
	}

	if err := s.noteRepository.DeleteNote(ctx, noteID); err != nil {
		logger.FromContext(ctx).Err(err).Str("note_id", noteID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// ensureUser maps a vanished token owner to ErrUnknownUser.
func (s *noteService) ensureUser(ctx context.Context, userID string) error {
	_, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUnknownUser
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	return nil
}
