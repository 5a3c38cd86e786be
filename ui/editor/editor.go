package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Style selects how the field chain and Tab behave.
type Style struct {
	// Wrap makes j/k cycle from the last field back to the first instead of
	// holding at the boundary.
	Wrap bool
	// ForceNormalOnTab puts a field reached via Tab back into Normal
	// sub-mode, used by edit overlays so Tab never silently enters Insert.
	ForceNormalOnTab bool
}

// Editor is an ordered set of fields with one focus and a shared desired
// column. Horizontal movement writes the desired column; vertical movement
// only reads it, clamped to the target row's length.
type Editor struct {
	fields     []*Field
	focus      int
	desiredCol int
	style      Style
}

// New creates an editor over the given fields. The first field has focus.
func New(style Style, fields ...*Field) *Editor {
	return &Editor{fields: fields, style: style}
}

// Focused returns the field that currently has focus.
func (e *Editor) Focused() *Field { return e.fields[e.focus] }

// FocusIndex returns the index of the focused field.
func (e *Editor) FocusIndex() int { return e.focus }

// Fields returns the editor's fields in order.
func (e *Editor) Fields() []*Field { return e.fields }

// DesiredColumn returns the sticky column used by vertical movement.
func (e *Editor) DesiredColumn() int { return e.desiredCol }

// Values returns every field's text in field order.
func (e *Editor) Values() []string {
	vals := make([]string, len(e.fields))
	for i, f := range e.fields {
		vals[i] = f.Text()
	}
	return vals
}

// SetValues replaces every field's text, resets sub-modes to Normal, and
// clears the desired column. Cursors land at each field's end of text.
func (e *Editor) SetValues(vals []string) {
	for i, f := range e.fields {
		if i < len(vals) {
			f.SetText(vals[i])
		} else {
			f.SetText("")
		}
	}
	e.focus = 0
	e.desiredCol = 0
}

// ClearInputs empties every field and refocuses the first one.
func (e *Editor) ClearInputs() {
	e.SetValues(nil)
}

// setDesired records the focused cursor column after a horizontal motion.
func (e *Editor) setDesired() {
	_, col := e.Focused().Cursor()
	e.desiredCol = col
}

// focusField moves focus to index i and places the cursor on the given row
// at the desired column. Row -1 means the field's last row.
func (e *Editor) focusField(i, row int) {
	e.focus = i
	f := e.Focused()
	if row < 0 {
		row = len(f.lines) - 1
	}
	f.row = row
	f.col = min(e.desiredCol, f.lineLen(row))
}

// nextField returns the field index after i under the chain policy, or -1
// when the chain holds at the boundary.
func (e *Editor) nextField(i int) int {
	if i+1 < len(e.fields) {
		return i + 1
	}
	if e.style.Wrap {
		return 0
	}
	return -1
}

func (e *Editor) prevField(i int) int {
	if i > 0 {
		return i - 1
	}
	if e.style.Wrap {
		return len(e.fields) - 1
	}
	return -1
}

// moveDown performs j/Down: within a multiline field while not on the last
// line, otherwise a handoff to the next field's first row.
func (e *Editor) moveDown() {
	f := e.Focused()
	if f.multiline && !f.IsAtLastLine() {
		f.row++
		f.col = min(e.desiredCol, f.lineLen(f.row))
		return
	}
	if next := e.nextField(e.focus); next >= 0 {
		e.focusField(next, 0)
	}
}

// moveUp performs k/Up, symmetric to moveDown: the handoff target is the
// previous field's last row.
func (e *Editor) moveUp() {
	f := e.Focused()
	if f.multiline && !f.IsAtFirstLine() {
		f.row--
		f.col = min(e.desiredCol, f.lineLen(f.row))
		return
	}
	if prev := e.prevField(e.focus); prev >= 0 {
		e.focusField(prev, -1)
	}
}

// firstFieldOrLine implements g: inside a multiline field jump to its first
// line, even when already on it, otherwise to the first field's first line.
func (e *Editor) firstFieldOrLine() {
	f := e.Focused()
	if f.multiline {
		f.row = 0
		f.col = min(e.desiredCol, f.lineLen(0))
		return
	}
	e.focusField(0, 0)
}

// lastFieldOrLine implements G, symmetric to firstFieldOrLine: inside a
// multiline field jump to its last line, otherwise to the last field,
// landing at the end of its text.
func (e *Editor) lastFieldOrLine() {
	f := e.Focused()
	if f.multiline {
		f.row = len(f.lines) - 1
		f.col = min(e.desiredCol, f.lineLen(f.row))
		return
	}
	e.focus = len(e.fields) - 1
	e.Focused().moveToEnd()
}

// tabField implements Tab/Shift-Tab: always moves fields, always cycles,
// and repositions the cursor at the end of the target field's text.
func (e *Editor) tabField(backward bool) {
	n := len(e.fields)
	if backward {
		e.focus = (e.focus - 1 + n) % n
	} else {
		e.focus = (e.focus + 1) % n
	}
	f := e.Focused()
	f.moveToEnd()
	e.setDesired()
	if e.style.ForceNormalOnTab {
		f.mode = ModeNormal
	} else {
		f.mode = ModeInsert
	}
}

// HandleKey routes one keystroke. The returned bool reports whether the key
// was consumed; unhandled keys (Esc in Normal sub-mode, Enter outside a
// multiline insert, h/Left at column zero in Normal sub-mode) fall through
// to the caller, which decides whether to save, close, or exit.
func (e *Editor) HandleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyTab:
		e.tabField(false)
		return true
	case tea.KeyShiftTab:
		e.tabField(true)
		return true
	}

	f := e.Focused()
	if f.mode == ModeInsert {
		return e.handleInsertKey(msg)
	}
	return e.handleNormalKey(msg)
}

func (e *Editor) handleInsertKey(msg tea.KeyMsg) bool {
	f := e.Focused()
	switch msg.Type {
	case tea.KeyEsc:
		f.mode = ModeNormal
		return true
	case tea.KeyEnter:
		if f.multiline {
			f.insertNewline()
			e.setDesired()
			return true
		}
		return false
	case tea.KeyBackspace:
		f.backspace()
		e.setDesired()
		return true
	case tea.KeyDelete:
		f.deleteAtCursor()
		e.setDesired()
		return true
	case tea.KeyLeft:
		if f.col > 0 {
			f.col--
		}
		e.setDesired()
		return true
	case tea.KeyRight:
		if f.col < f.lineLen(f.row) {
			f.col++
		}
		e.setDesired()
		return true
	case tea.KeyUp:
		e.moveUp()
		return true
	case tea.KeyDown:
		e.moveDown()
		return true
	case tea.KeyHome:
		f.col = 0
		e.setDesired()
		return true
	case tea.KeyEnd:
		f.col = f.lineLen(f.row)
		e.setDesired()
		return true
	case tea.KeySpace:
		f.insertRunes(" ")
		e.setDesired()
		return true
	case tea.KeyRunes:
		f.insertRunes(string(msg.Runes))
		e.setDesired()
		return true
	}
	return false
}

func (e *Editor) handleNormalKey(msg tea.KeyMsg) bool {
	f := e.Focused()

	switch msg.Type {
	case tea.KeyLeft:
		return e.moveLeft()
	case tea.KeyRight:
		return e.moveRight()
	case tea.KeyUp:
		e.moveUp()
		return true
	case tea.KeyDown:
		e.moveDown()
		return true
	case tea.KeyHome:
		f.col = 0
		e.setDesired()
		return true
	case tea.KeyEnd:
		f.col = f.lineLen(f.row)
		e.setDesired()
		return true
	case tea.KeyDelete:
		f.deleteAtCursor()
		e.setDesired()
		return true
	case tea.KeyEsc, tea.KeyEnter:
		return false
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return false
	}
	switch msg.Runes[0] {
	case 'h':
		return e.moveLeft()
	case 'l':
		return e.moveRight()
	case 'j':
		e.moveDown()
		return true
	case 'k':
		e.moveUp()
		return true
	case 'g':
		e.firstFieldOrLine()
		return true
	case 'G':
		e.lastFieldOrLine()
		return true
	case '0':
		f.col = 0
		e.setDesired()
		return true
	case '$':
		f.col = f.lineLen(f.row)
		e.setDesired()
		return true
	case 'i':
		f.mode = ModeInsert
		return true
	case 'a':
		if f.col < f.lineLen(f.row) {
			f.col++
			e.setDesired()
		}
		f.mode = ModeInsert
		return true
	case 'I':
		f.col = 0
		e.setDesired()
		f.mode = ModeInsert
		return true
	case 'A':
		f.col = f.lineLen(f.row)
		e.setDesired()
		f.mode = ModeInsert
		return true
	case 'x':
		f.deleteAtCursor()
		e.setDesired()
		return true
	}
	return false
}

// moveLeft reports false at column zero so the caller can treat h/Left as
// "exit the editor" when the inline pane has focus.
func (e *Editor) moveLeft() bool {
	f := e.Focused()
	if f.col == 0 {
		return false
	}
	f.col--
	e.setDesired()
	return true
}

func (e *Editor) moveRight() bool {
	f := e.Focused()
	if f.col < f.lineLen(f.row) {
		f.col++
	}
	e.setDesired()
	return true
}
