package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new user and returns it with UserID and CreatedAt
	// assigned. Returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns [ErrUserNotFound] when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns [ErrUserNotFound] when no user has the id.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// NoteRepository persists notes.
type NoteRepository interface {
	// CreateNote stores a new note and returns it with NoteID, CreatedAt and
	// UpdatedAt assigned. Returns [ErrUserNotFound] when the owner does not
	// exist.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// FindNoteByID returns [ErrNoteNotFound] when no note has the id.
	FindNoteByID(ctx context.Context, noteID string) (models.Note, error)

	// ListNotes returns one page of the user's notes, newest first.
	ListNotes(ctx context.Context, userID string, page models.Pagination) ([]models.Note, error)

	// CountNotes returns the total number of the user's notes.
	CountNotes(ctx context.Context, userID string) (int, error)

	// UpdateNote sets the given columns and refreshes updated_at. Returns
	// [ErrNoteNotFound] when no row was changed.
	UpdateNote(ctx context.Context, noteID string, fields map[string]any) error

	// DeleteNote returns [ErrNoteNotFound] when no row was removed.
	DeleteNote(ctx context.Context, noteID string) error
}

// ErrorClassificator translates driver-specific errors into store sentinels.
type ErrorClassificator interface {
	// Classify returns [ErrUniqueViolation] or [ErrForeignKeyViolation] when
	// err is such a constraint failure, and nil otherwise.
	Classify(err error) error
}
