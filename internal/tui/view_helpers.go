package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const uiDivider = "──────────────────────────────────────────────────────"

const timeLayout = "02.01.2006 15:04"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ctrl+c: выход")

	return b.String()
}

func renderError(msg string) string {
	return errorStyle.Render("Ошибка: " + msg)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText shortens v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// firstLine returns the first line of v for list previews.
func firstLine(v string) string {
	line, _, _ := strings.Cut(v, "\n")
	return line
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func formatPageInfo(page, totalPages int) string {
	if totalPages == 0 {
		return "Страница 0 из 0"
	}
	return fmt.Sprintf("Страница %d из %d", page, totalPages)
}
