package ui

import (
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"github.com/kastheco/tickdo/internal/tick"
	"github.com/kastheco/tickdo/ui/editor"
)

// Field indices within the inline editor chain.
const (
	PaneFieldTitle = iota
	PaneFieldDescription
	PaneFieldDate
	PaneFieldTime
)

// TaskPane is the detail pane for the selected task. When editing, it runs
// a non-wrapping inline field chain (Title, Description, Date, Time) and
// tracks the original values so saves only happen on real changes.
type TaskPane struct {
	editor  *editor.Editor
	task    tick.Task
	editing bool
	orig    [4]string
	width   int
}

// NewTaskPane creates an idle detail pane.
func NewTaskPane() *TaskPane {
	return &TaskPane{
		editor: editor.New(
			editor.Style{ForceNormalOnTab: true},
			editor.NewField("Title", false),
			editor.NewField("Description", true),
			editor.NewField("Date", false),
			editor.NewField("Time", false),
		),
	}
}

// SetWidth sets the render width.
func (p *TaskPane) SetWidth(w int) { p.width = w }

// Editing reports whether the inline editor has focus.
func (p *TaskPane) Editing() bool { return p.editing }

// Editor exposes the inline field editor.
func (p *TaskPane) Editor() *editor.Editor { return p.editor }

// Task returns the task being shown or edited.
func (p *TaskPane) Task() tick.Task { return p.task }

// SetTask points the pane at the cursor task; nil clears it. Ignored while
// the inline editor has focus.
func (p *TaskPane) SetTask(task *tick.Task) {
	if p.editing {
		return
	}
	if task == nil {
		p.task = tick.Task{}
		return
	}
	p.task = *task
}

// StartEditing binds the pane's editor to a task snapshot. All fields open
// in Normal sub-mode.
func (p *TaskPane) StartEditing(task tick.Task, now time.Time) {
	p.task = task
	p.orig = [4]string{task.Title, task.Content, DateInputText(task, now), TimeInputText(task, now)}
	p.editor.SetValues(p.orig[:])
	p.editing = true
}

// StopEditing releases focus without saving.
func (p *TaskPane) StopEditing() {
	p.editing = false
}

// HasChanges reports whether any field differs from its original value.
func (p *TaskPane) HasChanges() bool {
	vals := p.editor.Values()
	for i, orig := range p.orig {
		if vals[i] != orig {
			return true
		}
	}
	return false
}

// Values returns the field texts: title, description, date, time.
func (p *TaskPane) Values() []string { return p.editor.Values() }

// DateInputText renders a due date back into the parser's input format.
func DateInputText(task tick.Task, now time.Time) string {
	if task.DueDate.IsZero() {
		return ""
	}
	return task.DueDate.In(now.Location()).Format("1/2/2006")
}

// TimeInputText renders a due time; all-day tasks have none.
func TimeInputText(task tick.Task, now time.Time) string {
	if task.DueDate.IsZero() || task.IsAllDay {
		return ""
	}
	return strings.ToLower(task.DueDate.In(now.Location()).Format("3:04pm"))
}

// String renders the pane: a read-only summary normally, the field chain
// while editing.
func (p *TaskPane) String() string {
	width := p.width
	if width <= 0 {
		width = 60
	}

	if !p.editing {
		if p.task.ID == "" {
			return emptyStyle.Render("select a task to see details")
		}
		var b strings.Builder
		b.WriteString(paneLabelStyle.Render(p.task.Title))
		if due := formatDue(p.task, time.Now()); due != "" {
			b.WriteString("\n" + dueStyle.Render("due "+due))
		}
		if p.task.Content != "" {
			b.WriteString("\n\n" + contentStyle.Render(wordwrap.String(p.task.Content, width-2)))
		}
		return b.String()
	}

	styles := editor.DefaultStyles()
	var b strings.Builder
	header := "editing"
	if p.HasChanges() {
		header = "editing " + paneDirtyStyle.Render("[+]")
	}
	b.WriteString(paneLabelStyle.Render(header))
	b.WriteString("\n\n")
	for i := range p.editor.Fields() {
		b.WriteString(p.editor.RenderField(i, i == p.editor.FocusIndex(), styles))
		b.WriteString("\n\n")
	}
	b.WriteString(StatusDescStyle.Render("ctrl+s/enter save · esc exit · h at col 0 exits"))
	return b.String()
}
