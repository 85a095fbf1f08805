// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction the terminal
// client uses to talk to the notes API.
//
// The primary abstraction is [ServerAdapter], which decouples the UI from the
// underlying protocol. The package ships an HTTP/REST implementation built on
// resty ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the notes API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates with email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// CurrentSession describes the session of the stored token.
	CurrentSession(ctx context.Context) (models.Session, error)

	// CreateNote creates a note owned by the current user.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// ListNotes returns one page of the current user's notes, newest first.
	ListNotes(ctx context.Context, page models.Pagination) (models.NotesPage, error)

	// GetNote returns a single note of the current user.
	GetNote(ctx context.Context, noteID string) (models.Note, error)

	// UpdateNote sends a partial update; only title and content are applied
	// by the server.
	UpdateNote(ctx context.Context, noteID string, fields map[string]any) error

	// DeleteNote permanently removes a note.
	DeleteNote(ctx context.Context, noteID string) error

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)
}
