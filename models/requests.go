package models

import "strconv"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Username *string `json:"username,omitempty" validate:"omitnil,min=3"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreateNoteRequest is the body of POST /notes.
type CreateNoteRequest struct {
	Title   string  `json:"title" validate:"required,min=3"`
	Content *string `json:"content,omitempty" validate:"omitnil,trimmin=3,trimmax=600"`
}

// UpdateNoteRequest is the raw body of PATCH /notes/{id}. It is kept as a
// generic map so that unknown keys can be dropped by the field filter instead
// of being rejected.
type UpdateNoteRequest map[string]any

// AuthorizationHeader is the raw value of the Authorization request header.
type AuthorizationHeader string

// NoteIDParam is the {id} path parameter of single-note routes.
type NoteIDParam string

// ListNotesQuery is the raw query string of GET /notes before validation.
// Empty values mean "not provided".
type ListNotesQuery struct {
	Page  string `json:"page" validate:"omitempty,number,max=9"`
	Limit string `json:"limit" validate:"omitempty,number,max=9"`
}

// Pagination converts a validated query into [Pagination], applying
// [DefaultPage] and [DefaultLimit] for missing values.
func (q ListNotesQuery) Pagination() Pagination {
	p := Pagination{Page: DefaultPage, Limit: DefaultLimit}
	if n, err := strconv.Atoi(q.Page); err == nil {
		p.Page = n
	}
	if n, err := strconv.Atoi(q.Limit); err == nil {
		p.Limit = n
	}
	return p
}
