package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputGroup is a list of text inputs with exactly one focused.
type inputGroup struct {
	inputs []textinput.Model
	focus  int
}

func newTextInput(placeholder string, charLimit int, masked bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 40
	if masked {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newInputGroup(inputs ...textinput.Model) inputGroup {
	g := inputGroup{inputs: inputs}
	g.inputs[0].Focus()
	return g
}

func (g *inputGroup) setFocus(i int) {
	g.inputs[g.focus].Blur()
	g.focus = (i + len(g.inputs)) % len(g.inputs)
	g.inputs[g.focus].Focus()
}

func (g *inputGroup) next() { g.setFocus(g.focus + 1) }

func (g *inputGroup) prev() { g.setFocus(g.focus - 1) }

func (g *inputGroup) value(i int) string {
	return g.inputs[i].Value()
}

func (g *inputGroup) view(i int) string {
	return g.inputs[i].View()
}

// update forwards msg to the focused input.
func (g *inputGroup) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.inputs[g.focus], cmd = g.inputs[g.focus].Update(msg)
	return cmd
}

func (g *inputGroup) reset() {
	for i := range g.inputs {
		g.inputs[i].SetValue("")
	}
	g.setFocus(0)
}
