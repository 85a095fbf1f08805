package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, logs them in and describes the current
// session.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	CurrentSession(ctx context.Context, userID, rawToken string) (models.Session, error)
}

// TokenService issues and checks session tokens.
type TokenService interface {
	// Issue signs a token for userID that expires after [TokenDuration].
	Issue(ctx context.Context, userID string) (models.Token, error)

	// Verify checks signature, algorithm and issuer. Time-based claims are
	// left to the caller. Every failure is reported as [ErrTokenIsInvalid].
	Verify(ctx context.Context, tokenString string) (models.Token, error)

	// Decode reads the claims without checking the signature.
	Decode(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages the notes of an authenticated user.
type NoteService interface {
	Create(ctx context.Context, userID string, req models.CreateNoteRequest) (models.Note, error)
	List(ctx context.Context, userID string, page models.Pagination) (models.NotesPage, error)
	Get(ctx context.Context, userID, noteID string) (models.Note, error)
	Update(ctx context.Context, userID, noteID string, fields map[string]any) error
	Delete(ctx context.Context, userID, noteID string) error
}

// NoteAccessGuard resolves a note and checks that userID owns it.
type NoteAccessGuard interface {
	// Authorize returns [store.ErrNoteNotFound] when the note does not exist
	// and [ErrAccessDenied] when it belongs to someone else. Existence is
	// checked first.
	Authorize(ctx context.Context, userID, noteID string) (models.Note, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
