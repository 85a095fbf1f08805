package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
)

var ErrNilDependency = errors.New("client app requires an adapter and a UI")

type App struct {
	adapter adapter.ServerAdapter
	ui      UI

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || ui == nil {
		return nil, ErrNilDependency
	}

	return &App{adapter: serverAdapter, ui: ui, logger: logger}, nil
}

// Run shows the login flow and then the notes of the logged-in user.
// Logging out returns to the login flow. Quitting from any screen ends Run
// without an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	for {
		user, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user quit from login flow")
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.adapter.SetToken("")
		a.logger.Info().Str("user_id", user.ID).Msg("user logged out")
	}
}
