package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var ErrUserQuit = errors.New("вышел из программы")

// TUI runs the Bubble Tea programs of the terminal client: the login flow
// and the notes main loop.
type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, buildInfo: buildInfo, logger: logger}
}

// LoginFlow shows the menu, login and register pages until the user is
// authenticated. It returns [ErrUserQuit] when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.AuthResponse, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.adapter),
		pageRegister: NewRegisterModel(ctx, t.adapter),
	}

	root := NewRootModel(ctx, t.adapter, pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.AuthResponse{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.AuthResponse{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.AuthResponse{}, ErrUserQuit
	}

	t.logger.Info().Str("user_id", result.user.ID).Msg("user authenticated")
	return result.user, nil
}

// MainLoop shows the notes of user until they quit or log out.
func (t *TUI) MainLoop(ctx context.Context, user models.AuthResponse) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.adapter, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
