package ui

import (
	"github.com/kastheco/tickdo/internal/tick"
)

// View identifies one of the three task tabs.
type View int

const (
	ViewToday View = iota
	ViewWeek
	ViewInbox
)

func (v View) String() string {
	switch v {
	case ViewWeek:
		return "Week"
	case ViewInbox:
		return "Inbox"
	default:
		return "Today"
	}
}

// ViewFromName parses a view name from config, defaulting to Today.
func ViewFromName(name string) View {
	switch name {
	case "week":
		return ViewWeek
	case "inbox":
		return ViewInbox
	default:
		return ViewToday
	}
}

// TaskList holds the current view's tasks, the selection cursor, and the
// visual range. A selectedIdx of -1 means nothing is selected. The visual
// anchor is fixed when Visual mode starts; only the cursor end moves.
type TaskList struct {
	view  View
	tasks []tick.Task

	selectedIdx  int
	visualActive bool
	visualAnchor int

	height, width int
}

// NewTaskList creates an empty list showing the given view.
func NewTaskList(view View) *TaskList {
	return &TaskList{view: view, selectedIdx: -1}
}

// SetSize updates the render dimensions.
func (l *TaskList) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// View returns the active tab.
func (l *TaskList) ActiveView() View { return l.view }

// Tasks returns the tasks currently displayed.
func (l *TaskList) Tasks() []tick.Task { return l.tasks }

// SetTasks replaces the displayed tasks, clamping the selection into range.
func (l *TaskList) SetTasks(tasks []tick.Task) {
	l.tasks = tasks
	if len(tasks) == 0 {
		l.selectedIdx = -1
		l.exitVisual()
		return
	}
	if l.selectedIdx >= len(tasks) {
		l.selectedIdx = len(tasks) - 1
	}
	if l.visualAnchor >= len(tasks) {
		l.visualAnchor = len(tasks) - 1
	}
}

// SelectedIdx returns the cursor index, -1 when nothing is selected.
func (l *TaskList) SelectedIdx() int { return l.selectedIdx }

// Selected returns the task under the cursor, or nil.
func (l *TaskList) Selected() *tick.Task {
	if l.selectedIdx < 0 || l.selectedIdx >= len(l.tasks) {
		return nil
	}
	return &l.tasks[l.selectedIdx]
}

// SelectPrevious moves the cursor up, clamping at the first task. With no
// selection it selects the last task.
func (l *TaskList) SelectPrevious() {
	if len(l.tasks) == 0 {
		return
	}
	switch {
	case l.selectedIdx < 0:
		l.selectedIdx = len(l.tasks) - 1
	case l.selectedIdx > 0:
		l.selectedIdx--
	}
}

// SelectNext moves the cursor down, clamping at the last task. With no
// selection it selects the first task.
func (l *TaskList) SelectNext() {
	if len(l.tasks) == 0 {
		return
	}
	switch {
	case l.selectedIdx < 0:
		l.selectedIdx = 0
	case l.selectedIdx < len(l.tasks)-1:
		l.selectedIdx++
	}
}

// SelectPreviousCycling moves the cursor up, wrapping to the last task.
func (l *TaskList) SelectPreviousCycling() {
	if len(l.tasks) == 0 {
		return
	}
	if l.selectedIdx < 0 {
		l.selectedIdx = len(l.tasks) - 1
	} else {
		l.selectedIdx = (l.selectedIdx - 1 + len(l.tasks)) % len(l.tasks)
	}
}

// SelectNextCycling moves the cursor down, wrapping to the first task.
func (l *TaskList) SelectNextCycling() {
	if len(l.tasks) == 0 {
		return
	}
	if l.selectedIdx < 0 {
		l.selectedIdx = 0
	} else {
		l.selectedIdx = (l.selectedIdx + 1) % len(l.tasks)
	}
}

// SelectFirst jumps to the first task.
func (l *TaskList) SelectFirst() {
	if len(l.tasks) == 0 {
		return
	}
	l.selectedIdx = 0
}

// SelectLast jumps to the last task.
func (l *TaskList) SelectLast() {
	if len(l.tasks) == 0 {
		return
	}
	l.selectedIdx = len(l.tasks) - 1
}

// SelectNone clears the selection and collapses any visual range.
func (l *TaskList) SelectNone() {
	l.selectedIdx = -1
	l.exitVisual()
}

// EnterVisualMode anchors a visual range at the cursor, or at the first
// task when nothing is selected.
func (l *TaskList) EnterVisualMode() {
	if len(l.tasks) == 0 {
		return
	}
	if l.selectedIdx < 0 {
		l.selectedIdx = 0
	}
	l.visualActive = true
	l.visualAnchor = l.selectedIdx
}

// ExitVisualMode collapses the range back to the cursor.
func (l *TaskList) ExitVisualMode() {
	l.exitVisual()
}

// InVisualMode reports whether a visual range is active.
func (l *TaskList) InVisualMode() bool { return l.visualActive }

func (l *TaskList) exitVisual() {
	l.visualActive = false
	l.visualAnchor = 0
}

// SelectedIndices returns the inclusive span between anchor and cursor
// regardless of which is numerically smaller. Outside Visual mode it is
// the single selected index, or empty.
func (l *TaskList) SelectedIndices() []int {
	if !l.visualActive {
		if l.selectedIdx < 0 {
			return nil
		}
		return []int{l.selectedIdx}
	}
	lo, hi := l.visualAnchor, l.selectedIdx
	if lo > hi {
		lo, hi = hi, lo
	}
	indices := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		indices = append(indices, i)
	}
	return indices
}

// SelectedTasks returns the tasks covered by the selection span.
func (l *TaskList) SelectedTasks() []tick.Task {
	indices := l.SelectedIndices()
	tasks := make([]tick.Task, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(l.tasks) {
			tasks = append(tasks, l.tasks[i])
		}
	}
	return tasks
}

// NextTab advances to the next view and clears the selection.
func (l *TaskList) NextTab() {
	l.view = (l.view + 1) % 3
	l.SelectNone()
}

// PreviousTab goes back one view and clears the selection.
func (l *TaskList) PreviousTab() {
	l.view = (l.view + 2) % 3
	l.SelectNone()
}
