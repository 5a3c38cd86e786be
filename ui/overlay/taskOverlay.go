package overlay

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kastheco/tickdo/internal/timeparse"
	"github.com/kastheco/tickdo/ui/editor"
)

// Field indices within the task overlay.
const (
	TaskFieldTitle = iota
	TaskFieldDescription
	TaskFieldDate
	TaskFieldTime
)

// TaskOverlay is the create/edit dialog with Title, Description, Date, and
// Time fields. Create dialogs open with the title field in Insert
// sub-mode; edit dialogs open fully in Normal sub-mode.
type TaskOverlay struct {
	title  string
	edit   bool
	editor *editor.Editor

	validationAttempted bool
	dateErr             string
	timeErr             string

	now   func() time.Time
	width int
}

// NewTaskOverlay builds a task dialog. The now callback anchors date
// validation and defaults to time.Now.
func NewTaskOverlay(title string, edit bool, now func() time.Time) *TaskOverlay {
	if now == nil {
		now = time.Now
	}
	ed := editor.New(
		editor.Style{Wrap: true, ForceNormalOnTab: edit},
		editor.NewField("Title", false),
		editor.NewField("Description", true),
		editor.NewField("Date", false),
		editor.NewField("Time", false),
	)
	ed.SetValues(nil)
	if !edit {
		ed.Focused().SetMode(editor.ModeInsert)
	}
	return &TaskOverlay{
		title:  title,
		edit:   edit,
		editor: ed,
		now:    now,
		width:  60,
	}
}

// Title returns the dialog heading.
func (o *TaskOverlay) Title() string { return o.title }

// Editor exposes the underlying field editor.
func (o *TaskOverlay) Editor() *editor.Editor { return o.editor }

// SetWidth sets the rendered dialog width.
func (o *TaskOverlay) SetWidth(w int) { o.width = w }

// InInsertMode reports whether the focused field is in Insert sub-mode.
func (o *TaskOverlay) InInsertMode() bool {
	return o.editor.Focused().Mode() == editor.ModeInsert
}

// HandleKeyPress routes a key to the field editor. Editing the date or
// time field clears that field's validation error.
func (o *TaskOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	focus := o.editor.FocusIndex()
	before := o.editor.Focused().Text()
	handled := o.editor.HandleKey(msg)
	if handled && o.editor.FocusIndex() == focus && o.editor.Focused().Text() != before {
		switch focus {
		case TaskFieldDate:
			o.dateErr = ""
		case TaskFieldTime:
			o.timeErr = ""
		}
	}
	return handled
}

// Values returns the field texts in order: title, description, date, time.
func (o *TaskOverlay) Values() []string { return o.editor.Values() }

// SetValues loads field texts and resets validation state.
func (o *TaskOverlay) SetValues(vals []string) {
	o.editor.SetValues(vals)
	o.validationAttempted = false
	o.dateErr = ""
	o.timeErr = ""
}

// Validate parses the date and time fields when they are non-empty. Empty
// fields are valid: they produce a task with no due date.
func (o *TaskOverlay) Validate() bool {
	o.validationAttempted = true
	o.dateErr = ""
	o.timeErr = ""

	vals := o.Values()
	if date := strings.TrimSpace(vals[TaskFieldDate]); date != "" {
		if _, err := timeparse.ParseDateUS(date, o.now()); err != nil {
			o.dateErr = err.Error()
		}
	}
	if clock := strings.TrimSpace(vals[TaskFieldTime]); clock != "" {
		if _, err := timeparse.ParseTimeUS(clock); err != nil {
			o.timeErr = err.Error()
		}
	}
	return !o.HasValidationErrors()
}

// HasValidationErrors reports whether the last Validate left field errors.
func (o *TaskOverlay) HasValidationErrors() bool {
	return o.dateErr != "" || o.timeErr != ""
}

// Render returns the styled dialog.
func (o *TaskOverlay) Render() string {
	styles := editor.DefaultStyles()

	var b strings.Builder
	b.WriteString(titleStyle.Render(o.title))
	b.WriteString("\n")
	for i := range o.editor.Fields() {
		b.WriteString(o.editor.RenderField(i, i == o.editor.FocusIndex(), styles))
		switch {
		case i == TaskFieldDate && o.dateErr != "":
			b.WriteString("\n" + errorStyle.Render("✗ "+o.dateErr))
		case i == TaskFieldTime && o.timeErr != "":
			b.WriteString("\n" + errorStyle.Render("✗ "+o.timeErr))
		}
		b.WriteString("\n\n")
	}
	b.WriteString(hintStyle.Render("tab fields · esc normal/cancel · enter save · ctrl+s force save"))

	return boxStyle.Width(o.width).Render(b.String())
}

var _ Overlay = (*TaskOverlay)(nil)
