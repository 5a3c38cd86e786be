// Package editor implements the modal multi-field text editor used by the
// task overlays and the inline detail pane. Each field keeps its own cursor
// and Normal/Insert sub-mode; the editor set tracks the desired column that
// makes vertical movement sticky the way vim does it.
package editor

import "strings"

// SubMode is the vim-like state of a single field.
type SubMode int

const (
	ModeNormal SubMode = iota
	ModeInsert
)

// Field is one logical input with one or more lines of text. Single-line
// fields ignore newline input entirely.
type Field struct {
	name      string
	lines     []string
	row, col  int
	mode      SubMode
	multiline bool
}

// NewField creates an empty field.
func NewField(name string, multiline bool) *Field {
	return &Field{name: name, lines: []string{""}, mode: ModeNormal, multiline: multiline}
}

// Name returns the field's display label.
func (f *Field) Name() string { return f.name }

// Multiline reports whether the field accepts newlines.
func (f *Field) Multiline() bool { return f.multiline }

// Mode returns the field's current sub-mode.
func (f *Field) Mode() SubMode { return f.mode }

// SetMode forces the field's sub-mode.
func (f *Field) SetMode(m SubMode) { f.mode = m }

// Cursor returns the cursor position as (row, col).
func (f *Field) Cursor() (int, int) { return f.row, f.col }

// Lines returns the field's line buffer.
func (f *Field) Lines() []string { return f.lines }

// Text returns the field content with lines joined by newlines.
func (f *Field) Text() string { return strings.Join(f.lines, "\n") }

// SetText replaces the content, resets the sub-mode to Normal, and places
// the cursor at the end of the text.
func (f *Field) SetText(s string) {
	if f.multiline {
		f.lines = strings.Split(s, "\n")
	} else {
		f.lines = []string{strings.ReplaceAll(s, "\n", " ")}
	}
	if len(f.lines) == 0 {
		f.lines = []string{""}
	}
	f.mode = ModeNormal
	f.moveToEnd()
}

// IsAtLineStart reports whether the cursor sits at column zero.
func (f *Field) IsAtLineStart() bool { return f.col == 0 }

// IsAtFirstLine reports whether the cursor is on the field's first line.
func (f *Field) IsAtFirstLine() bool { return f.row == 0 }

// IsAtLastLine reports whether the cursor is on the field's last line.
func (f *Field) IsAtLastLine() bool { return f.row == len(f.lines)-1 }

func (f *Field) line() string { return f.lines[f.row] }

// lineLen returns the rune length of a row. Cursor columns are counted in
// runes throughout.
func (f *Field) lineLen(row int) int { return len([]rune(f.lines[row])) }

func (f *Field) moveToEnd() {
	f.row = len(f.lines) - 1
	f.col = f.lineLen(f.row)
}

func (f *Field) clampCol() {
	if n := f.lineLen(f.row); f.col > n {
		f.col = n
	}
}

// insertRunes inserts text at the cursor and advances it.
func (f *Field) insertRunes(s string) {
	line := []rune(f.line())
	out := make([]rune, 0, len(line)+len(s))
	out = append(out, line[:f.col]...)
	out = append(out, []rune(s)...)
	out = append(out, line[f.col:]...)
	f.lines[f.row] = string(out)
	f.col += len([]rune(s))
}

// insertNewline splits the current line at the cursor.
func (f *Field) insertNewline() {
	if !f.multiline {
		return
	}
	line := []rune(f.line())
	before, after := string(line[:f.col]), string(line[f.col:])
	rest := append([]string{}, f.lines[f.row+1:]...)
	f.lines = append(f.lines[:f.row], before, after)
	f.lines = append(f.lines, rest...)
	f.row++
	f.col = 0
}

// backspace deletes the rune before the cursor, joining lines at column 0.
func (f *Field) backspace() {
	if f.col > 0 {
		line := []rune(f.line())
		f.lines[f.row] = string(line[:f.col-1]) + string(line[f.col:])
		f.col--
		return
	}
	if f.row == 0 {
		return
	}
	prev := f.lines[f.row-1]
	f.col = len([]rune(prev))
	f.lines[f.row-1] = prev + f.line()
	f.lines = append(f.lines[:f.row], f.lines[f.row+1:]...)
	f.row--
}

// deleteAtCursor removes the rune under the cursor, joining lines at EOL.
func (f *Field) deleteAtCursor() {
	line := []rune(f.line())
	if f.col < len(line) {
		f.lines[f.row] = string(line[:f.col]) + string(line[f.col+1:])
		return
	}
	if f.row < len(f.lines)-1 {
		f.lines[f.row] = f.line() + f.lines[f.row+1]
		f.lines = append(f.lines[:f.row+1], f.lines[f.row+2:]...)
	}
}
