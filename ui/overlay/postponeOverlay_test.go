package overlay

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostponeOverlay_EmptyDurationRejected(t *testing.T) {
	o := NewPostponeOverlay("3 tasks", fixedNow)
	assert.False(t, o.Validate())
	assert.True(t, o.HasValidationErrors())
	assert.Contains(t, o.Render(), "Duration cannot be empty")
}

func TestPostponeOverlay_UnparseableDurationRejected(t *testing.T) {
	o := NewPostponeOverlay("1 task", fixedNow)
	o.SetValues([]string{"sometime later"})
	assert.False(t, o.Validate())
	assert.True(t, o.HasValidationErrors())
}

func TestPostponeOverlay_ValidDuration(t *testing.T) {
	o := NewPostponeOverlay("1 task", fixedNow)
	o.SetValues([]string{"now + 30min"})
	require.True(t, o.Validate())

	target, err := o.Target()
	require.NoError(t, err)
	assert.True(t, target.Absolute)
	assert.Equal(t, fixedNow().Add(30*time.Minute), target.At)
}

func TestPostponeOverlay_TypingClearsError(t *testing.T) {
	o := NewPostponeOverlay("1 task", fixedNow)
	require.False(t, o.Validate())

	o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	assert.False(t, o.HasValidationErrors())
}

func TestPostponeOverlay_OpensInInsertMode(t *testing.T) {
	o := NewPostponeOverlay("1 task", fixedNow)
	assert.True(t, o.InInsertMode())
}
