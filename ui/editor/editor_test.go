package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeKey(t *testing.T, e *Editor, msg tea.KeyMsg) {
	t.Helper()
	e.HandleKey(msg)
}

// newTaskFields builds the Title/Description/Date/Time field set used by
// the inline editor chain.
func newTaskFields() []*Field {
	return []*Field{
		NewField("Title", false),
		NewField("Description", true),
		NewField("Date", false),
		NewField("Time", false),
	}
}

func TestDesiredColumn_UpdatedByHorizontalMotion(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues([]string{"hello", "", "", ""})
	e.Focused().row, e.Focused().col = 0, 0

	for i := 0; i < 3; i++ {
		typeKey(t, e, runeKey('l'))
	}
	assert.Equal(t, 3, e.DesiredColumn())
}

func TestDesiredColumn_RoundTripThroughShorterRow(t *testing.T) {
	// Move right 3 columns in Title, down into a shorter Description line,
	// then back up: column 3 must be restored exactly.
	e := New(Style{}, newTaskFields()...)
	e.SetValues([]string{"longtitle", "ab", "", ""})
	e.Focused().row, e.Focused().col = 0, 0

	for i := 0; i < 3; i++ {
		typeKey(t, e, runeKey('l'))
	}
	require.Equal(t, 3, e.DesiredColumn())

	typeKey(t, e, runeKey('j'))
	require.Equal(t, 1, e.FocusIndex())
	_, col := e.Focused().Cursor()
	assert.Equal(t, 2, col, "clamped to the shorter row's length")
	assert.Equal(t, 3, e.DesiredColumn(), "vertical motion must not overwrite the desired column")

	typeKey(t, e, runeKey('k'))
	require.Equal(t, 0, e.FocusIndex())
	_, col = e.Focused().Cursor()
	assert.Equal(t, 3, col)
}

func TestVerticalMotion_ClampsWithinMultilineField(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues([]string{"", "first line\nx\nthird line", "", ""})
	e.focus = 1
	f := e.Focused()
	f.row, f.col = 0, 6
	e.desiredCol = 6

	typeKey(t, e, runeKey('j'))
	row, col := f.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)

	typeKey(t, e, runeKey('j'))
	row, col = f.Cursor()
	assert.Equal(t, 2, row)
	assert.Equal(t, 6, col)
}

func TestMultilineBoundary_HandsOffToNeighborField(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues([]string{"title", "only line", "06/10", ""})
	e.focus = 1
	e.Focused().row, e.Focused().col = 0, 0
	e.desiredCol = 0

	typeKey(t, e, runeKey('j'))
	assert.Equal(t, 2, e.FocusIndex(), "j at the last line leaves the field")

	typeKey(t, e, runeKey('k'))
	assert.Equal(t, 1, e.FocusIndex())
	typeKey(t, e, runeKey('k'))
	assert.Equal(t, 0, e.FocusIndex())
}

func TestFieldChain_NonWrappingHoldsAtBoundary(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues(nil)
	e.focus = len(e.Fields()) - 1

	typeKey(t, e, runeKey('j'))
	assert.Equal(t, 3, e.FocusIndex(), "no-wrap chain holds at the last field")

	e.focus = 0
	typeKey(t, e, runeKey('k'))
	assert.Equal(t, 0, e.FocusIndex(), "no-wrap chain holds at the first field")
}

func TestFieldChain_WrappingCycles(t *testing.T) {
	e := New(Style{Wrap: true}, newTaskFields()...)
	e.SetValues(nil)
	e.focus = len(e.Fields()) - 1

	typeKey(t, e, runeKey('j'))
	assert.Equal(t, 0, e.FocusIndex(), "wrap chain cycles from last to first")

	typeKey(t, e, runeKey('k'))
	assert.Equal(t, 3, e.FocusIndex(), "wrap chain cycles from first to last")
}

func TestG_JumpsToLastFieldEnd(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues([]string{"title", "", "", "5pm"})
	e.focus = 0

	typeKey(t, e, runeKey('G'))
	assert.Equal(t, 3, e.FocusIndex())
	_, col := e.Focused().Cursor()
	assert.Equal(t, 3, col, "lands at the end of the last field's text")
}

func TestG_InsideMultilineGoesToItsLastLine(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues([]string{"", "one\ntwo\nthree", "", ""})
	e.focus = 1
	e.Focused().row = 0

	typeKey(t, e, runeKey('G'))
	assert.Equal(t, 1, e.FocusIndex(), "stays in the multiline field")
	row, _ := e.Focused().Cursor()
	assert.Equal(t, 2, row)

	typeKey(t, e, runeKey('g'))
	row, _ = e.Focused().Cursor()
	assert.Equal(t, 0, row)
}

func TestGAndG_OnMultilineBoundaryLinesStayInField(t *testing.T) {
	// g on the first line and G on the last line are no-ops for focus:
	// field identity, not the cursor row, decides where they go.
	e := New(Style{}, newTaskFields()...)
	e.SetValues([]string{"", "one\ntwo\nthree", "", ""})
	e.focus = 1
	e.Focused().row = 0

	typeKey(t, e, runeKey('g'))
	assert.Equal(t, 1, e.FocusIndex(), "g on the first line must not leave the field")
	row, _ := e.Focused().Cursor()
	assert.Equal(t, 0, row)

	e.Focused().row = 2
	typeKey(t, e, runeKey('G'))
	assert.Equal(t, 1, e.FocusIndex(), "G on the last line must not leave the field")
	row, _ = e.Focused().Cursor()
	assert.Equal(t, 2, row)
}

func TestTab_MovesToEndOfTextAndForcesNormalInEditStyle(t *testing.T) {
	e := New(Style{ForceNormalOnTab: true}, newTaskFields()...)
	e.SetValues([]string{"title", "desc", "06/10", "5pm"})
	e.Focused().SetMode(ModeInsert)

	typeKey(t, e, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, e.FocusIndex())
	assert.Equal(t, ModeNormal, e.Focused().Mode())
	_, col := e.Focused().Cursor()
	assert.Equal(t, 4, col)

	typeKey(t, e, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, e.FocusIndex())
}

func TestTab_EntersInsertInCreateStyle(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues(nil)

	typeKey(t, e, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ModeInsert, e.Focused().Mode())
}

func TestInsertMode_TypingAndNewlines(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues(nil)
	e.Focused().SetMode(ModeInsert)

	for _, r := range "hi" {
		typeKey(t, e, runeKey(r))
	}
	assert.Equal(t, "hi", e.Focused().Text())

	// Enter on a single-line field is not consumed: the caller confirms.
	assert.False(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}))

	// Enter inside the multiline field inserts a newline instead.
	e.focus = 1
	e.Focused().SetMode(ModeInsert)
	for _, r := range "ab" {
		typeKey(t, e, runeKey(r))
	}
	assert.True(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, "ab\n", e.Focused().Text())
}

func TestEscape_StepsInsertBackToNormalThenFallsThrough(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues(nil)
	e.Focused().SetMode(ModeInsert)

	assert.True(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, ModeNormal, e.Focused().Mode())

	// Second Esc is not consumed: the caller closes the modal or editor.
	assert.False(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}))
}

func TestNormalMode_LeftAtColumnZeroFallsThrough(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues([]string{"abc", "", "", ""})
	e.Focused().col = 0

	assert.False(t, e.HandleKey(runeKey('h')), "h at column 0 exits to the caller")
	e.Focused().col = 2
	assert.True(t, e.HandleKey(runeKey('h')))
}

func TestBackspace_JoinsLinesAndUpdatesDesiredColumn(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues([]string{"", "ab\ncd", "", ""})
	e.focus = 1
	f := e.Focused()
	f.SetMode(ModeInsert)
	f.row, f.col = 1, 0

	typeKey(t, e, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "abcd", f.Text())
	row, col := f.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 2, col)
	assert.Equal(t, 2, e.DesiredColumn())
}

func TestSetValues_ResetsModeCursorAndDesiredColumn(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues([]string{"abcdef", "", "", ""})
	e.Focused().SetMode(ModeInsert)
	e.desiredCol = 4

	e.SetValues([]string{"xy", "", "", ""})
	assert.Equal(t, 0, e.FocusIndex())
	assert.Equal(t, ModeNormal, e.Focused().Mode())
	assert.Equal(t, 0, e.DesiredColumn())
	_, col := e.Focused().Cursor()
	assert.Equal(t, 2, col, "cursor positioned at end of text after SetValues")
}

func TestNormalMode_InsertEntryKeys(t *testing.T) {
	e := New(Style{}, newTaskFields()...)
	e.SetValues([]string{"abc", "", "", ""})
	f := e.Focused()
	f.col = 1

	typeKey(t, e, runeKey('a'))
	assert.Equal(t, ModeInsert, f.Mode())
	_, col := f.Cursor()
	assert.Equal(t, 2, col)

	f.SetMode(ModeNormal)
	typeKey(t, e, runeKey('I'))
	assert.Equal(t, ModeInsert, f.Mode())
	_, col = f.Cursor()
	assert.Equal(t, 0, col)

	f.SetMode(ModeNormal)
	typeKey(t, e, runeKey('A'))
	_, col = f.Cursor()
	assert.Equal(t, 3, col)
}
