package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kastheco/tickdo/internal/tick"
	"github.com/kastheco/tickdo/internal/timeparse"
	"github.com/kastheco/tickdo/log"
	"github.com/kastheco/tickdo/ui"
	"github.com/kastheco/tickdo/ui/editor"
	"github.com/kastheco/tickdo/ui/overlay"
)

// tickMsg drives the banner countdown and anything else on the UI clock.
type tickMsg struct{}

// tasksFetchedMsg signals that a refresh finished and its result is waiting
// in the pending channel.
type tasksFetchedMsg struct{}

type fetchFailedMsg struct{ err error }

// opDoneMsg reports a single remote mutation (create, save).
type opDoneMsg struct{ err error }

// batchDoneMsg reports a batch mutation over the selection. failures holds
// one message per task that could not be acted on.
type batchDoneMsg struct {
	op       string
	failures []string
}

func tickCmd() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(tickInterval)
		return tickMsg{}
	}
}

// startRefresh kicks off a background fetch of all three views. While one
// is in flight every keypress is ignored, so a second refresh can never
// start; the guard below covers non-key callers too.
func (m *home) startRefresh() tea.Cmd {
	if m.mode == modeProcessing {
		return nil
	}
	m.beginProcessing("refreshing", modeNormal)
	now := m.now()
	return func() tea.Msg {
		lists, err := m.service.FetchAll(m.ctx, now)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		m.pending <- lists
		return tasksFetchedMsg{}
	}
}

// startCreate opens the create modal. In the Today view the date field is
// pre-filled with today so a bare title lands in Today rather than Inbox.
func (m *home) startCreate() {
	o := overlay.NewTaskOverlay("New Task", false, m.now)
	if m.list.ActiveView() == ui.ViewToday {
		o.SetValues([]string{"", "", m.now().Format("1/2/2006"), ""})
		// SetValues resets sub-modes; create modals open typing into the title.
		o.Editor().Focused().SetMode(editor.ModeInsert)
	}
	m.taskOverlay = o
	m.mode = modeInsert
}

// startEdit opens the edit modal for the cursor task.
func (m *home) startEdit() {
	task := m.list.Selected()
	if task == nil {
		return
	}
	t := *task
	m.editingTask = &t
	o := overlay.NewTaskOverlay("Edit Task", true, m.now)
	o.SetValues([]string{t.Title, t.Content, ui.DateInputText(t, m.now()), ui.TimeInputText(t, m.now())})
	m.taskOverlay = o
	m.mode = modeInsert
}

// startPostpone opens the postpone modal for the current selection.
func (m *home) startPostpone() {
	tasks := m.list.SelectedTasks()
	if len(tasks) == 0 {
		return
	}
	desc := fmt.Sprintf("%d task(s)", len(tasks))
	if len(tasks) == 1 {
		desc = fmt.Sprintf("%q", tasks[0].Title)
	}
	m.postponeOverlay = overlay.NewPostponeOverlay(desc, m.now)
	m.mode = modeInsert
}

// confirm asks before a destructive batch action. The action runs only on
// an explicit yes.
func (m *home) confirm(kind overlay.ConfirmKind, message string, action tea.Cmd) {
	m.confirmOverlay = overlay.NewConfirmationOverlay(kind, message)
	m.pendingConfirmAction = action
}

func (m *home) confirmComplete() {
	tasks := m.list.SelectedTasks()
	if len(tasks) == 0 {
		return
	}
	msg := fmt.Sprintf("Complete %q?", tasks[0].Title)
	if len(tasks) > 1 {
		msg = fmt.Sprintf("Complete %d tasks?", len(tasks))
	}
	m.confirm(overlay.ConfirmComplete, msg, m.completeTasks(tasks))
}

func (m *home) confirmDelete() {
	tasks := m.list.SelectedTasks()
	if len(tasks) == 0 {
		return
	}
	msg := fmt.Sprintf("Delete %q?", tasks[0].Title)
	if len(tasks) > 1 {
		msg = fmt.Sprintf("Delete %d tasks?", len(tasks))
	}
	m.confirm(overlay.ConfirmDelete, msg, m.deleteTasks(tasks))
}

// completeTasks marks every task in the batch done, sequentially, and
// collects per-task failures.
func (m *home) completeTasks(tasks []tick.Task) tea.Cmd {
	return func() tea.Msg {
		var failures []string
		for _, t := range tasks {
			if err := m.service.CompleteTask(m.ctx, t.ProjectID, t.ID); err != nil {
				log.ErrorLog.Printf("complete %s: %v", t.ID, err)
				failures = append(failures, err.Error())
			}
		}
		return batchDoneMsg{op: "complete", failures: failures}
	}
}

func (m *home) deleteTasks(tasks []tick.Task) tea.Cmd {
	return func() tea.Msg {
		var failures []string
		for _, t := range tasks {
			if err := m.service.DeleteTask(m.ctx, t.ProjectID, t.ID); err != nil {
				log.ErrorLog.Printf("delete %s: %v", t.ID, err)
				failures = append(failures, err.Error())
			}
		}
		return batchDoneMsg{op: "delete", failures: failures}
	}
}

// postponeTasks moves the batch according to the parsed target. A relative
// offset shifts each task's own due date. An absolute target moves the
// earliest task to the target and keeps the others' spacing from it; tasks
// without a due date land on the target itself.
func (m *home) postponeTasks(tasks []tick.Task, target timeparse.Target) tea.Cmd {
	updated := make([]tick.Task, 0, len(tasks))
	var failures []string

	if target.Absolute {
		var earliest time.Time
		for _, t := range tasks {
			if t.DueDate.IsZero() {
				continue
			}
			if earliest.IsZero() || t.DueDate.Before(earliest) {
				earliest = t.DueDate.Time
			}
		}
		for _, t := range tasks {
			if t.DueDate.IsZero() {
				t.DueDate = tick.APITime{Time: target.At}
			} else {
				t.DueDate = tick.APITime{Time: target.At.Add(t.DueDate.Sub(earliest))}
			}
			t.StartDate = t.DueDate
			updated = append(updated, t)
		}
	} else {
		for _, t := range tasks {
			if t.DueDate.IsZero() {
				failures = append(failures, fmt.Sprintf("%q has no due date", t.Title))
				continue
			}
			t.DueDate = tick.APITime{Time: t.DueDate.Add(target.Offset)}
			t.StartDate = t.DueDate
			updated = append(updated, t)
		}
	}

	return func() tea.Msg {
		fails := failures
		for _, t := range updated {
			if _, err := m.service.UpdateTask(m.ctx, t); err != nil {
				log.ErrorLog.Printf("postpone %s: %v", t.ID, err)
				fails = append(fails, err.Error())
			}
		}
		return batchDoneMsg{op: "postpone", failures: fails}
	}
}

// draftFromValues converts validated modal or pane inputs into a Draft.
// Empty date and time fields never touch the parsers.
func draftFromValues(title, date, clock, content string, now time.Time) (tick.Draft, error) {
	d := tick.Draft{
		Title:   strings.TrimSpace(title),
		Content: content,
	}
	if s := strings.TrimSpace(date); s != "" {
		day, err := timeparse.ParseDateUS(s, now)
		if err != nil {
			return tick.Draft{}, err
		}
		d.Date = &day
	}
	if s := strings.TrimSpace(clock); s != "" {
		c, err := timeparse.ParseTimeUS(s)
		if err != nil {
			return tick.Draft{}, err
		}
		d.Clock = &c
	}
	return d, nil
}

// createTask sends a new task to the service. New tasks go to the inbox
// project; the view partition on the next refresh decides where they show.
func (m *home) createTask(d tick.Draft) tea.Cmd {
	now := m.now()
	return func() tea.Msg {
		task := tick.Task{ProjectID: tick.InboxProjectID}
		tick.ApplyDraft(&task, d, now)
		if _, err := m.service.CreateTask(m.ctx, task); err != nil {
			return opDoneMsg{err: fmt.Errorf("could not create task: %w", err)}
		}
		return opDoneMsg{}
	}
}

// saveTask writes edited fields back to an existing task.
func (m *home) saveTask(task tick.Task, d tick.Draft) tea.Cmd {
	now := m.now()
	return func() tea.Msg {
		tick.ApplyDraft(&task, d, now)
		if _, err := m.service.UpdateTask(m.ctx, task); err != nil {
			return opDoneMsg{err: fmt.Errorf("could not save task: %w", err)}
		}
		return opDoneMsg{}
	}
}
