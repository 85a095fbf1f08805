package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

func renderSession(session models.Session) string {
	var b strings.Builder

	b.WriteString("Email            : " + valueOrDash(session.Email) + "\n")
	b.WriteString("Имя пользователя : " + valueOrDash(session.Username) + "\n")
	b.WriteString("ID пользователя  : " + valueOrDash(session.UserID) + "\n")
	b.WriteString("Выдана           : " + formatTime(session.IssuedAt) + "\n")
	b.WriteString("Истекает         : " + formatTime(session.ExpiresAt))

	return renderPage("ТЕКУЩАЯ СЕССИЯ", overlayBoxStyle.Render(b.String()), "esc: назад")
}
