package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	registerEmail = iota
	registerUsername
	registerPassword
	registerRepeatPassword
)

// RegisterModel is the Bubble Tea model for the registration screen. It renders four
// text inputs (email, optional username, password and password confirmation) and
// dispatches an async registration command on form submission.
// The server answers a registration with a session token, so a successful
// [AuthResult] finishes the login flow in [RootModel].
type RegisterModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	form       inputGroup
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with four pre-configured text inputs.
// The email field receives focus immediately; the password fields use masked echo.
func NewRegisterModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *RegisterModel {
	return &RegisterModel{
		ctx:     ctx,
		adapter: serverAdapter,
		form: newInputGroup(
			newTextInput("email", 254, false),
			newTextInput("username (можно пусто)", 64, false),
			newTextInput("password", 72, true),
			newTextInput("repeat password", 72, true),
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [AuthResult]: clears submitting state; on error, populates errMsg.
//   - esc         : cancels and navigates back to the menu.
//   - tab         : moves focus to the next input.
//   - shift+tab   : moves focus to the previous input.
//   - enter       : validates inputs (email and password required, passwords must
//     match) and dispatches the async registration command.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = registerErrorMessage(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.form.reset()
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			m.form.next()
			return m, nil
		case "shift+tab":
			m.form.prev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			req, errMsg := m.request()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	return m, m.form.update(msg)
}

// request builds the registration request or returns a message describing
// what the user has to fix.
func (m *RegisterModel) request() (models.RegisterRequest, string) {
	email := strings.TrimSpace(m.form.value(registerEmail))
	username := strings.TrimSpace(m.form.value(registerUsername))
	pass := m.form.value(registerPassword)
	repeat := m.form.value(registerRepeatPassword)

	switch {
	case email == "" || pass == "":
		return models.RegisterRequest{}, "Email и пароль обязательны"
	case pass != repeat:
		return models.RegisterRequest{}, "Пароли не совпадают"
	}

	req := models.RegisterRequest{Email: email, Password: pass}
	if username != "" {
		req.Username = &username
	}
	return req, ""
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Поле             │ Значение\n")
	b.WriteString("─────────────────┼────────────────────────────────────────────\n")
	b.WriteString("Email            │ [" + m.form.view(registerEmail) + "]\n")
	b.WriteString("Имя пользователя │ [" + m.form.view(registerUsername) + "]\n")
	b.WriteString("Пароль           │ [" + m.form.view(registerPassword) + "]\n")
	b.WriteString("Повтор пароля    │ [" + m.form.view(registerRepeatPassword) + "]\n")

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		user, err := serverAdapter.Register(ctx, req)
		return AuthResult{User: user, Err: err}
	}
}

func registerErrorMessage(err error) string {
	if errors.Is(err, adapter.ErrConflict) {
		return "Пользователь с таким email уже существует"
	}
	return humanizeServerUnavailableError(err)
}
