package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label string
	page  string
}

// MenuModel is the start page of the login flow.
type MenuModel struct {
	items []menuItem
	idx   int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{label: "Войти", page: pageLogin},
			{label: "Зарегистрироваться", page: pageRegister},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.idx = max(m.idx-1, 0)
	case key.Matches(keyMsg, keys.down):
		m.idx = min(m.idx+1, len(m.items)-1)
	case key.Matches(keyMsg, keys.enter):
		nav := NavigateTo{Page: m.items[m.idx].page}
		return m, func() tea.Msg { return nav }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	for i, item := range m.items {
		line := fmt.Sprintf("%d. %s", i+1, item.label)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return renderPage("GO NOTES KEEPER", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}
