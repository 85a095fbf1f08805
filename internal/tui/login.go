// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	loginEmail = iota
	loginPassword
)

// LoginModel is the login page. Submitting the form sends an [AuthResult]
// which [RootModel] uses to finish the login flow.
type LoginModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	form       inputGroup
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		adapter: serverAdapter,
		form: newInputGroup(
			newTextInput("email", 254, false),
			newTextInput("password", 72, true),
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles the result of a login attempt and the form keys; other
// keys go to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = loginErrorMessage(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
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
			return m.submit()
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	req := models.LoginRequest{
		Email:    strings.TrimSpace(m.form.value(loginEmail)),
		Password: m.form.value(loginPassword),
	}
	if req.Email == "" || req.Password == "" {
		m.errMsg = "Email и пароль обязательны"
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, serverAdapter := m.ctx, m.adapter
	return m, func() tea.Msg {
		user, err := serverAdapter.Login(ctx, req)
		return AuthResult{User: user, Err: err}
	}
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Email  : [" + m.form.view(loginEmail) + "]\n")
	b.WriteString("Пароль : [" + m.form.view(loginPassword) + "]\n")

	if m.submitting {
		b.WriteString("\nВход...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + renderError(m.errMsg) + "\n")
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: войти")
}

func loginErrorMessage(err error) string {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return "Неверный email или пароль"
	}
	return humanizeServerUnavailableError(err)
}
