package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/mock"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func newMockAdapter(t *testing.T) *mock.MockServerAdapter {
	t.Helper()
	return mock.NewMockServerAdapter(gomock.NewController(t))
}

// runCmd executes cmd synchronously and returns its message.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

var testCtx = context.Background()
