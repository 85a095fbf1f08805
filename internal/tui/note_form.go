package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	formTitle = iota
	formContent
)

const minTitleLength = 3

// noteForm edits the title and content of a new or existing note.
type noteForm struct {
	editing  bool
	original models.Note

	title   textinput.Model
	content textarea.Model
	focus   int

	saving bool
	errMsg string
}

// newNoteForm returns an empty form, or a form prefilled with note when
// editing.
func newNoteForm(note *models.Note) noteForm {
	title := textinput.New()
	title.Placeholder = "Заголовок"
	title.CharLimit = 200
	title.Width = 54
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Текст заметки (можно пусто)"
	content.CharLimit = 600
	content.SetWidth(54)
	content.SetHeight(8)

	f := noteForm{title: title, content: content}
	if note != nil {
		f.editing = true
		f.original = *note
		f.title.SetValue(note.Title)
		f.content.SetValue(note.Content)
	}
	return f
}

func (f noteForm) update(msg tea.Msg) (noteForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			f.switchFocus()
			return f, nil
		case key.Matches(keyMsg, keys.enter) && f.focus == formTitle:
			f.switchFocus()
			return f, nil
		}
	}

	var cmd tea.Cmd
	if f.focus == formTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.content, cmd = f.content.Update(msg)
	}
	return f, cmd
}

func (f *noteForm) switchFocus() {
	if f.focus == formTitle {
		f.title.Blur()
		f.content.Focus()
		f.focus = formContent
		return
	}
	f.content.Blur()
	f.title.Focus()
	f.focus = formTitle
}

func (f noteForm) titleValue() (string, error) {
	title := strings.TrimSpace(f.title.Value())
	if utf8.RuneCountInString(title) < minTitleLength {
		return "", errTitleTooShort
	}
	return title, nil
}

// createRequest builds the body of a new note. Empty content is omitted.
func (f noteForm) createRequest() (models.CreateNoteRequest, error) {
	title, err := f.titleValue()
	if err != nil {
		return models.CreateNoteRequest{}, err
	}

	req := models.CreateNoteRequest{Title: title}
	if content := strings.TrimSpace(f.content.Value()); content != "" {
		req.Content = &content
	}
	return req, nil
}

// changedFields returns only the fields that differ from the edited note.
func (f noteForm) changedFields() (map[string]any, error) {
	title, err := f.titleValue()
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if title != f.original.Title {
		fields[models.NoteFieldTitle] = title
	}
	if content := strings.TrimSpace(f.content.Value()); content != f.original.Content {
		fields[models.NoteFieldContent] = content
	}
	return fields, nil
}

func (f noteForm) view() string {
	var b strings.Builder
	b.WriteString("Заголовок : [ " + f.title.View() + " ]\n\n")
	b.WriteString("Текст:\n")
	b.WriteString(f.content.View())
	b.WriteString("\n")

	if f.saving {
		b.WriteString("\nСохранение...\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(f.errMsg))
		b.WriteString("\n")
	}

	title := "НОВАЯ ЗАМЕТКА"
	if f.editing {
		title = "ИЗМЕНЕНИЕ ЗАМЕТКИ"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: след. поле │ ctrl+s: сохранить │ esc: отмена")
}
