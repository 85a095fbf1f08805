package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	user       models.AuthResponse

	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, serverAdapter adapter.ServerAdapter, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		adapter:   serverAdapter,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return r.cmdServerVersion()
	}
	return tea.Batch(r.current.Init(), r.cmdServerVersion())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if v, ok := msg.(serverVersionMsg); ok {
		r.serverVersion = v.version
		if v.err != nil {
			r.serverVersion = ""
		}
		return r, nil
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	// Finalize login/register flow on success.
	if result, ok := msg.(AuthResult); ok && result.Err == nil {
		r.user = result.User
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	if r.adapter == nil {
		return nil
	}
	ctx, serverAdapter := r.ctx, r.adapter

	return func() tea.Msg {
		version, err := serverAdapter.Version(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
