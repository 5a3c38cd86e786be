package overlay

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kastheco/tickdo/internal/timeparse"
	"github.com/kastheco/tickdo/ui/editor"
)

// PostponeOverlay asks for a postpone duration: a relative offset like
// "5min" or an absolute target like "now + 30min".
type PostponeOverlay struct {
	editor   *editor.Editor
	errMsg   string
	taskDesc string
	now      func() time.Time
	width    int
}

// NewPostponeOverlay builds the dialog. taskDesc names what is being
// postponed, e.g. "3 tasks" or a single task title.
func NewPostponeOverlay(taskDesc string, now func() time.Time) *PostponeOverlay {
	if now == nil {
		now = time.Now
	}
	ed := editor.New(editor.Style{}, editor.NewField("Duration", false))
	ed.SetValues(nil)
	ed.Focused().SetMode(editor.ModeInsert)
	return &PostponeOverlay{
		editor:   ed,
		taskDesc: taskDesc,
		now:      now,
		width:    50,
	}
}

// Title returns the dialog heading.
func (o *PostponeOverlay) Title() string { return "Postpone " + o.taskDesc }

// SetWidth sets the rendered dialog width.
func (o *PostponeOverlay) SetWidth(w int) { o.width = w }

// InInsertMode reports whether the duration field is in Insert sub-mode.
func (o *PostponeOverlay) InInsertMode() bool {
	return o.editor.Focused().Mode() == editor.ModeInsert
}

// HandleKeyPress routes a key to the duration field. Any edit clears the
// previous validation error.
func (o *PostponeOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	before := o.editor.Focused().Text()
	handled := o.editor.HandleKey(msg)
	if handled && o.editor.Focused().Text() != before {
		o.errMsg = ""
	}
	return handled
}

// Values returns the duration text.
func (o *PostponeOverlay) Values() []string { return o.editor.Values() }

// SetValues loads the duration text and clears the error.
func (o *PostponeOverlay) SetValues(vals []string) {
	o.editor.SetValues(vals)
	o.errMsg = ""
}

// Validate rejects an empty or unparseable duration.
func (o *PostponeOverlay) Validate() bool {
	text := strings.TrimSpace(o.Values()[0])
	if text == "" {
		o.errMsg = "Duration cannot be empty"
		return false
	}
	if _, err := timeparse.ParseDuration(text, o.now()); err != nil {
		o.errMsg = err.Error()
		return false
	}
	o.errMsg = ""
	return true
}

// HasValidationErrors reports whether the last Validate failed.
func (o *PostponeOverlay) HasValidationErrors() bool { return o.errMsg != "" }

// Target parses the validated duration. Call only after Validate passes.
func (o *PostponeOverlay) Target() (timeparse.Target, error) {
	return timeparse.ParseDuration(strings.TrimSpace(o.Values()[0]), o.now())
}

// Render returns the styled dialog.
func (o *PostponeOverlay) Render() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(o.Title()))
	b.WriteString("\n")
	b.WriteString(o.editor.RenderField(0, true, editor.DefaultStyles()))
	if o.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("✗ "+o.errMsg))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(`"5min", "2 hours", "1day", "now + 30min"`))

	return boxStyle.Width(o.width).Render(b.String())
}

var _ Overlay = (*PostponeOverlay)(nil)
