package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmKind tags what a confirmation will do, so the application decides
// the action from the field rather than from the overlay's runtime type.
type ConfirmKind int

const (
	ConfirmComplete ConfirmKind = iota
	ConfirmDelete
)

// ConfirmationOverlay is a yes/no dialog. It consumes no keys itself: the
// application gates all input on ConfirmKey and CancelKey while one is
// open, ignoring everything else.
type ConfirmationOverlay struct {
	Kind       ConfirmKind
	ConfirmKey string
	CancelKey  string
	message    string
	width      int
}

// NewConfirmationOverlay creates a confirmation with the default y/n keys.
func NewConfirmationOverlay(kind ConfirmKind, message string) *ConfirmationOverlay {
	return &ConfirmationOverlay{
		Kind:       kind,
		ConfirmKey: "y",
		CancelKey:  "n",
		message:    message,
		width:      50,
	}
}

// Title returns the dialog heading.
func (o *ConfirmationOverlay) Title() string {
	switch o.Kind {
	case ConfirmDelete:
		return "Delete"
	default:
		return "Complete"
	}
}

// SetWidth sets the rendered dialog width.
func (o *ConfirmationOverlay) SetWidth(w int) { o.width = w }

// HandleKeyPress always reports the key as unconsumed; the application's
// confirmation gate owns the decision.
func (o *ConfirmationOverlay) HandleKeyPress(tea.KeyMsg) bool { return false }

// Values returns the confirmation message.
func (o *ConfirmationOverlay) Values() []string { return []string{o.message} }

// SetValues replaces the confirmation message.
func (o *ConfirmationOverlay) SetValues(vals []string) {
	if len(vals) > 0 {
		o.message = vals[0]
	}
}

// Validate always passes: a confirmation has nothing to parse.
func (o *ConfirmationOverlay) Validate() bool { return true }

// HasValidationErrors always reports false.
func (o *ConfirmationOverlay) HasValidationErrors() bool { return false }

// Render returns the styled dialog.
func (o *ConfirmationOverlay) Render() string {
	accent := colorGold
	if o.Kind == ConfirmDelete {
		accent = colorLove
	}
	heading := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(o.Title())
	body := lipgloss.NewStyle().Foreground(colorText).Render(o.message)
	hint := hintStyle.Render("[" + o.ConfirmKey + "] confirm · [" + o.CancelKey + "/esc] cancel")

	return boxStyle.
		BorderForeground(accent).
		Width(o.width).
		Render(heading + "\n\n" + body + "\n" + hint)
}

var _ Overlay = (*ConfirmationOverlay)(nil)
