package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles controls field rendering.
type Styles struct {
	Label     lipgloss.Style
	Text      lipgloss.Style
	Cursor    lipgloss.Style
	ModeBadge lipgloss.Style
}

// DefaultStyles returns the standard field styling.
func DefaultStyles() Styles {
	return Styles{
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("#c4a7e7")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		ModeBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("#9ccfd8")),
	}
}

// RenderField draws one field with its label and, when focused, a visible
// cursor cell and an insert-mode badge.
func (e *Editor) RenderField(i int, focused bool, s Styles) string {
	f := e.fields[i]

	label := s.Label.Render(f.name)
	if focused && f.mode == ModeInsert {
		label += " " + s.ModeBadge.Render("-- INSERT --")
	}

	var body strings.Builder
	for row, line := range f.lines {
		if row > 0 {
			body.WriteString("\n")
		}
		if focused && row == f.row {
			body.WriteString(renderLineWithCursor(line, f.col, s))
		} else {
			body.WriteString(s.Text.Render(line))
		}
	}
	return label + "\n" + body.String()
}

func renderLineWithCursor(line string, col int, s Styles) string {
	runes := []rune(line)
	if col >= len(runes) {
		return s.Text.Render(line) + s.Cursor.Render(" ")
	}
	before := string(runes[:col])
	at := string(runes[col])
	after := string(runes[col+1:])
	return s.Text.Render(before) + s.Cursor.Render(at) + s.Text.Render(after)
}
