package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult is produced by the login and register pages.
type AuthResult struct {
	User models.AuthResponse
	Err  error
}

type serverVersionMsg struct {
	version string
	err     error
}

type notesLoadedMsg struct {
	page models.NotesPage
	err  error
}

type noteLoadedMsg struct {
	note models.Note
	err  error
}

type noteSavedMsg struct {
	created bool
	err     error
}

type noteDeletedMsg struct {
	err error
}

type sessionLoadedMsg struct {
	session models.Session
	err     error
}
