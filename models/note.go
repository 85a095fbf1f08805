package models

import "time"

// Note is a single user note. Every note has exactly one owner (UserID) and
// only that owner may read, update or delete it.
type Note struct {
	// NoteID is the opaque identifier assigned by the store on creation.
	NoteID string `json:"noteId"`

	// UserID references the owning [User]. Immutable after creation.
	UserID string `json:"userId"`

	// Title is the required note title.
	Title string `json:"title"`

	// Content is the optional note body. Stored as an empty string when absent.
	Content string `json:"content"`

	// CreatedAt is set once when the note is created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is set on creation and refreshed by every update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// Updatable note columns. Only these keys survive the field filter applied to
// partial-update payloads.
const (
	NoteFieldTitle   = "title"
	NoteFieldContent = "content"
)

// NoteUpdatableFields is the whitelist of note fields a client may change.
var NoteUpdatableFields = []string{NoteFieldTitle, NoteFieldContent}

// NotesData wraps the note list inside a paginated response.
type NotesData struct {
	Notes []Note `json:"notes"`
}

// NotesPage is a single page of a user's notes.
type NotesPage struct {
	Data       NotesData `json:"data"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}
