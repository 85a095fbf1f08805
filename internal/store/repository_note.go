package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the database/sql implementation of [NoteRepository]
// over the "notes" table.
type noteRepository struct {
	*DB
	logger *logger.Logger
	ids    *utils.UUIDGenerator
	now    func() time.Time
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    utcNow,
	}
}

// CreateNote stores note with a new id and both timestamps set to now.
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	note.NoteID = n.ids.Generate()
	note.CreatedAt = n.now()
	note.UpdatedAt = note.CreatedAt

	query, args, err := buildCreateNoteQuery(n.builder(), note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = n.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Str("user_id", note.UserID).
			Msg("error inserting note")

		if errors.Is(n.classify(err), ErrForeignKeyViolation) {
			return models.Note{}, ErrUserNotFound
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// FindNoteByID retrieves a single note regardless of its owner. Ownership is
// checked by the caller.
func (n *noteRepository) FindNoteByID(ctx context.Context, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindNoteByIDQuery(n.builder(), noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNoteByID").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = n.QueryRowContext(ctx, query, args...).Scan(
		&note.NoteID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*noteRepository.FindNoteByID").
			Str("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// ListNotes returns the requested page of the user's notes ordered by
// creation time, newest first. An empty page yields an empty, non-nil slice.
func (n *noteRepository) ListNotes(ctx context.Context, userID string, page models.Pagination) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(n.builder(), userID, page)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.ListNotes").
			Str("user_id", userID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, page.Limit)

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.NoteID,
			&note.UserID,
			&note.Title,
			&note.Content,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*noteRepository.ListNotes").
				Str("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*noteRepository.ListNotes").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// CountNotes returns how many notes the user owns.
func (n *noteRepository) CountNotes(ctx context.Context, userID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountNotesQuery(n.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CountNotes").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = n.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CountNotes").
			Str("user_id", userID).
			Msg("failed to count notes")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}

// UpdateNote applies fields to the note and refreshes updated_at.
func (n *noteRepository) UpdateNote(ctx context.Context, noteID string, fields map[string]any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(n.builder(), noteID, fields, n.now())
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.execAffectingNote(ctx, "*noteRepository.UpdateNote", noteID, query, args)
}

// DeleteNote removes the note.
func (n *noteRepository) DeleteNote(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(n.builder(), noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.execAffectingNote(ctx, "*noteRepository.DeleteNote", noteID, query, args)
}

// execAffectingNote runs a statement that must touch exactly the addressed
// note and reports [ErrNoteNotFound] when it touched nothing.
func (n *noteRepository) execAffectingNote(ctx context.Context, funcName, noteID, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := n.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("note_id", noteID).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Str("note_id", noteID).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
