package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestConfirmationOverlay_KindIsAField(t *testing.T) {
	del := NewConfirmationOverlay(ConfirmDelete, "Delete 2 tasks?")
	assert.Equal(t, ConfirmDelete, del.Kind)
	assert.Equal(t, "Delete", del.Title())

	done := NewConfirmationOverlay(ConfirmComplete, "Complete 1 task?")
	assert.Equal(t, ConfirmComplete, done.Kind)
	assert.Equal(t, "Complete", done.Title())
}

func TestConfirmationOverlay_ConsumesNoKeys(t *testing.T) {
	o := NewConfirmationOverlay(ConfirmDelete, "sure?")
	assert.False(t, o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}))
	assert.False(t, o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEsc}))
}

func TestConfirmationOverlay_DefaultKeys(t *testing.T) {
	o := NewConfirmationOverlay(ConfirmComplete, "sure?")
	assert.Equal(t, "y", o.ConfirmKey)
	assert.Equal(t, "n", o.CancelKey)
}

func TestPlaceOverlay_CentersForeground(t *testing.T) {
	bg := strings.TrimPrefix(strings.Repeat("\n..........", 5), "\n")
	fg := "XX"

	out := PlaceOverlay(0, 0, fg, bg, true, true)
	rows := strings.Split(out, "\n")
	assert.Len(t, rows, 5)
	assert.Contains(t, rows[2], "XX")
	assert.Equal(t, "..........", rows[0])
}

func TestPlaceOverlay_OversizedForegroundWins(t *testing.T) {
	out := PlaceOverlay(0, 0, "BIG\nBIG", "x", true, true)
	assert.Equal(t, "BIG\nBIG", out)
}
