package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenConfirmDelete
	screenSession
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	user    models.AuthResponse

	screen screen

	notes      []models.Note
	page       models.Pagination
	totalPages int
	idx        int
	loading    bool

	detail  models.Note
	form    noteForm
	session models.Session

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, serverAdapter adapter.ServerAdapter, user models.AuthResponse) mainLoopModel {
	return mainLoopModel{
		ctx:     ctx,
		adapter: serverAdapter,
		user:    user,
		page:    models.Pagination{Page: models.DefaultPage, Limit: models.DefaultLimit},
		loading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadNotes()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = m.errorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notes = msg.page.Data.Notes
		m.totalPages = msg.page.TotalPages
		if m.idx >= len(m.notes) {
			m.idx = len(m.notes) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case noteLoadedMsg:
		if msg.err != nil {
			m.errMsg = m.errorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.detail = msg.note
		m.screen = screenDetail
		return m, nil
	case noteSavedMsg:
		m.form.saving = false
		if msg.err != nil {
			m.form.errMsg = m.errorMessage(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.errMsg = ""
		if msg.created {
			// new notes are listed first
			m.page.Page = models.DefaultPage
			m.idx = 0
			m.status = "Заметка создана"
		} else {
			m.status = "Заметка обновлена"
		}
		m.loading = true
		return m, m.cmdLoadNotes()
	case noteDeletedMsg:
		m.screen = screenList
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %s", m.errorMessage(msg.err))
			return m, nil
		}
		m.status = "Заметка удалена"
		m.errMsg = ""
		if len(m.notes) == 1 && m.page.Page > 1 {
			m.page.Page--
		}
		m.loading = true
		return m, m.cmdLoadNotes()
	case sessionLoadedMsg:
		if msg.err != nil {
			m.errMsg = m.errorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.session = msg.session
		m.screen = screenSession
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenForm {
			var cmd tea.Cmd
			m.form, cmd = m.form.update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(keyMsg)
	case screenConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	case screenSession:
		if key.Matches(keyMsg, keys.esc) {
			m.screen = screenList
		}
		return m, nil
	case screenDetail:
		return m.updateDetail(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.notes)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.prevPage):
		if m.loading || m.page.Page <= 1 {
			return m, nil
		}
		m.page.Page--
		m.idx = 0
		m.loading = true
		return m, m.cmdLoadNotes()
	case key.Matches(keyMsg, keys.nextPage):
		if m.loading || m.page.Page >= m.totalPages {
			return m, nil
		}
		m.page.Page++
		m.idx = 0
		m.loading = true
		return m, m.cmdLoadNotes()
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.current()
		if !ok {
			m.status = "Нет заметок"
			return m, nil
		}
		return m, m.cmdGetNote(note.NoteID)
	case key.Matches(keyMsg, keys.newItem):
		m.startForm(nil)
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		note, ok := m.current()
		if !ok {
			m.status = "Нет заметок"
			return m, nil
		}
		m.startForm(&note)
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.current()
		if !ok {
			m.status = "Нет заметок"
			return m, nil
		}
		m.detail = note
		m.screen = screenConfirmDelete
	case key.Matches(keyMsg, keys.copy):
		note, ok := m.current()
		if !ok {
			m.status = "Нет заметок"
			return m, nil
		}
		m.copyContent(note)
	case key.Matches(keyMsg, keys.session):
		return m, m.cmdLoadSession()
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenList
	case key.Matches(keyMsg, keys.edit):
		note := m.detail
		m.startForm(&note)
	case key.Matches(keyMsg, keys.delete):
		m.screen = screenConfirmDelete
	case key.Matches(keyMsg, keys.copy):
		m.copyContent(m.detail)
	}
	return m, nil
}

func (m mainLoopModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		return m, m.cmdDelete(m.detail.NoteID)
	case key.Matches(keyMsg, keys.no):
		m.screen = screenList
	}
	return m, nil
}

func (m mainLoopModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.save):
		if m.form.saving {
			return m, nil
		}
		return m.saveForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) saveForm() (tea.Model, tea.Cmd) {
	if !m.form.editing {
		req, err := m.form.createRequest()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.form.errMsg = ""
		m.form.saving = true
		return m, m.cmdCreate(req)
	}

	fields, err := m.form.changedFields()
	if err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}
	if len(fields) == 0 {
		m.screen = screenList
		m.status = "Нет изменений"
		return m, nil
	}
	m.form.errMsg = ""
	m.form.saving = true
	return m, m.cmdUpdate(m.form.original.NoteID, fields)
}

func (m *mainLoopModel) startForm(note *models.Note) {
	m.form = newNoteForm(note)
	m.screen = screenForm
	m.status = ""
	m.errMsg = ""
}

func (m *mainLoopModel) copyContent(note models.Note) {
	if strings.TrimSpace(note.Content) == "" {
		m.status = "Нечего копировать"
		return
	}
	if err := copyToClipboard(note.Content); err != nil {
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
		return
	}
	m.status = "Скопировано"
}

func (m mainLoopModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m mainLoopModel) errorMessage(err error) string {
	if isSessionError(err) {
		return "Сессия недействительна, нажмите l для повторного входа"
	}
	if errors.Is(err, adapter.ErrNotFound) {
		return "Заметка не найдена"
	}
	return humanizeServerUnavailableError(err)
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenForm:
		return m.form.view()
	case screenDetail:
		return m.viewDetail()
	case screenConfirmDelete:
		return renderPage("УДАЛЕНИЕ ЗАМЕТКИ",
			fmt.Sprintf("Удалить заметку «%s»?", m.detail.Title),
			"y: удалить │ n/esc: отмена")
	case screenSession:
		return renderSession(m.session)
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	owner := m.user.Username
	if owner == "" {
		owner = m.user.Email
	}
	b.WriteString("Пользователь: " + valueOrDash(owner) + "\n\n")

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.notes) == 0:
		b.WriteString("Нет заметок\n")
	default:
		for i, note := range m.notes {
			row := fmt.Sprintf("%-30s │ %s │ %s",
				fitText(note.Title, 30),
				formatTime(note.UpdatedAt),
				fitText(firstLine(note.Content), 30),
			)
			if i == m.idx {
				row = selectedStyle.Render("> " + row)
			} else {
				row = "  " + row
			}
			b.WriteString(row + "\n")
		}
	}

	b.WriteString("\n" + formatPageInfo(m.page.Page, m.totalPages) + "\n")

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + renderError(m.errMsg) + "\n")
	}

	return renderPage("ЗАМЕТКИ", strings.TrimRight(b.String(), "\n"),
		"enter: открыть │ n: новая │ e: изм. │ d: уд. │ c: копировать │ s: сессия │ ←/→: страницы │ l: выйти из аккаунта │ q: выход")
}

func (m mainLoopModel) viewDetail() string {
	var b strings.Builder
	b.WriteString("Заголовок : " + m.detail.Title + "\n")
	b.WriteString("Создана   : " + formatTime(m.detail.CreatedAt) + "\n")
	b.WriteString("Изменена  : " + formatTime(m.detail.UpdatedAt) + "\n\n")
	b.WriteString(valueOrDash(m.detail.Content) + "\n")

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + renderError(m.errMsg) + "\n")
	}

	return renderPage("ПРОСМОТР ЗАМЕТКИ", strings.TrimRight(b.String(), "\n"), "esc: назад │ e: изм. │ d: уд. │ c: копировать")
}

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	ctx, serverAdapter, page := m.ctx, m.adapter, m.page

	return func() tea.Msg {
		notesPage, err := serverAdapter.ListNotes(ctx, page)
		return notesLoadedMsg{page: notesPage, err: err}
	}
}

func (m mainLoopModel) cmdGetNote(noteID string) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter

	return func() tea.Msg {
		note, err := serverAdapter.GetNote(ctx, noteID)
		return noteLoadedMsg{note: note, err: err}
	}
}

func (m mainLoopModel) cmdCreate(req models.CreateNoteRequest) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter

	return func() tea.Msg {
		_, err := serverAdapter.CreateNote(ctx, req)
		return noteSavedMsg{created: true, err: err}
	}
}

func (m mainLoopModel) cmdUpdate(noteID string, fields map[string]any) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter

	return func() tea.Msg {
		return noteSavedMsg{err: serverAdapter.UpdateNote(ctx, noteID, fields)}
	}
}

func (m mainLoopModel) cmdDelete(noteID string) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter

	return func() tea.Msg {
		return noteDeletedMsg{err: serverAdapter.DeleteNote(ctx, noteID)}
	}
}

func (m mainLoopModel) cmdLoadSession() tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter

	return func() tea.Msg {
		session, err := serverAdapter.CurrentSession(ctx)
		return sessionLoadedMsg{session: session, err: err}
	}
}
