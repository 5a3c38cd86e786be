package app

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kastheco/tickdo/keys"
)

// handleKeyPress routes every keypress. Precedence is fixed: Processing
// swallows everything, then the help screen, then an open confirmation
// overlay, then an open input overlay, then the inline editor, and only
// then the per-mode key tables.
func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeProcessing {
		return m, nil
	}

	if m.mode == modeHelp {
		switch msg.String() {
		case "esc", "q", "?":
			m.mode = modeNormal
		}
		return m, nil
	}

	if m.confirmOverlay != nil {
		return m.handleConfirmationKey(msg)
	}
	if m.taskOverlay != nil {
		return m.handleTaskOverlayKey(msg)
	}
	if m.postponeOverlay != nil {
		return m.handlePostponeOverlayKey(msg)
	}
	if m.pane.Editing() {
		return m.handlePaneKey(msg)
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}
	if m.mode == modeVisual {
		return m.handleVisualKey(name)
	}
	return m.handleNormalKey(name)
}

// handleConfirmationKey gates a pending destructive action. Only the
// overlay's confirm key runs it; its cancel key or Esc dismisses; every
// other key is ignored.
func (m *home) handleConfirmationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	switch {
	case strings.EqualFold(s, m.confirmOverlay.ConfirmKey):
		action := m.pendingConfirmAction
		m.confirmOverlay = nil
		m.pendingConfirmAction = nil
		m.list.ExitVisualMode()
		m.beginProcessing("working", modeNormal)
		return m, action
	case strings.EqualFold(s, m.confirmOverlay.CancelKey), s == "esc":
		m.confirmOverlay = nil
		m.pendingConfirmAction = nil
		return m, nil
	}
	return m, nil
}

func (m *home) handleTaskOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+S confirms from anywhere, even a multiline field in Insert.
	if msg.String() == "ctrl+s" {
		return m.confirmTaskOverlay()
	}
	if m.taskOverlay.HandleKeyPress(msg) {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.closeTaskOverlay()
		return m, nil
	case tea.KeyEnter:
		return m.confirmTaskOverlay()
	}
	return m, nil
}

func (m *home) confirmTaskOverlay() (tea.Model, tea.Cmd) {
	o := m.taskOverlay
	if !o.Validate() {
		return m, nil
	}
	vals := o.Values()
	draft, err := draftFromValues(vals[0], vals[2], vals[3], vals[1], m.now())
	if err != nil {
		m.handleError(err)
		return m, nil
	}
	editing := m.editingTask
	m.closeTaskOverlay()
	m.beginProcessing("saving", modeNormal)
	if editing != nil {
		return m, m.saveTask(*editing, draft)
	}
	return m, m.createTask(draft)
}

func (m *home) closeTaskOverlay() {
	m.taskOverlay = nil
	m.editingTask = nil
	m.mode = modeNormal
}

func (m *home) handlePostponeOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	o := m.postponeOverlay
	if o.HandleKeyPress(msg) {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.postponeOverlay = nil
		m.list.ExitVisualMode()
		m.mode = modeNormal
		return m, nil
	case tea.KeyEnter:
		if !o.Validate() {
			return m, nil
		}
		target, err := o.Target()
		if err != nil {
			m.handleError(err)
			return m, nil
		}
		tasks := m.list.SelectedTasks()
		m.postponeOverlay = nil
		m.list.ExitVisualMode()
		m.beginProcessing("postponing", modeNormal)
		return m, m.postponeTasks(tasks, target)
	}
	return m, nil
}

// handlePaneKey feeds keys to the inline editor. Keys the editor declines
// become pane-level actions: Esc in Normal sub-mode leaves the editor,
// Enter or Ctrl+S saves, and h or Left at column zero steps back to the
// list.
func (m *home) handlePaneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		return m.savePane()
	}
	if m.pane.Editor().HandleKey(msg) {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.stopPaneEditing()
		return m, nil
	case tea.KeyEnter:
		return m.savePane()
	case tea.KeyLeft:
		m.stopPaneEditing()
		return m, nil
	}
	if msg.String() == "h" {
		m.stopPaneEditing()
	}
	return m, nil
}

func (m *home) stopPaneEditing() {
	m.pane.StopEditing()
	m.mode = modeNormal
	m.syncPane()
}

func (m *home) savePane() (tea.Model, tea.Cmd) {
	if !m.pane.HasChanges() {
		m.stopPaneEditing()
		return m, nil
	}
	vals := m.pane.Values()
	draft, err := draftFromValues(vals[0], vals[2], vals[3], vals[1], m.now())
	if err != nil {
		// Stay in the editor so the input can be corrected.
		m.handleError(err)
		return m, nil
	}
	task := m.pane.Task()
	m.pane.StopEditing()
	m.beginProcessing("saving", modeNormal)
	return m, m.saveTask(task, draft)
}

func (m *home) handleNormalKey(name keys.KeyName) (tea.Model, tea.Cmd) {
	switch name {
	case keys.KeyQuit:
		return m, tea.Quit
	case keys.KeyClearSelection:
		m.list.SelectNone()
		m.syncPane()
	case keys.KeyRefresh:
		return m, m.startRefresh()
	case keys.KeyNew:
		m.startCreate()
	case keys.KeyComplete:
		m.confirmComplete()
	case keys.KeyDelete:
		m.confirmDelete()
	case keys.KeyPostpone:
		m.startPostpone()
	case keys.KeyHelp:
		m.openHelp()
	case keys.KeyDown:
		m.list.SelectNext()
		m.syncPane()
	case keys.KeyUp:
		m.list.SelectPrevious()
		m.syncPane()
	case keys.KeyCycleDown:
		m.list.SelectNextCycling()
		m.syncPane()
	case keys.KeyCycleUp:
		m.list.SelectPreviousCycling()
		m.syncPane()
	case keys.KeyFirst:
		m.list.SelectFirst()
		m.syncPane()
	case keys.KeyLast:
		m.list.SelectLast()
		m.syncPane()
	case keys.KeyNextView:
		m.list.NextTab()
		m.applyView()
	case keys.KeyPrevView:
		m.list.PreviousTab()
		m.applyView()
	case keys.KeyEnterEditor:
		if task := m.list.Selected(); task != nil {
			m.pane.StartEditing(*task, m.now())
			m.mode = modeInsert
		}
	case keys.KeyEdit:
		if m.list.Selected() != nil {
			m.startEdit()
		}
	case keys.KeyVisual:
		if len(m.list.Tasks()) > 0 {
			m.list.EnterVisualMode()
			m.mode = modeVisual
		}
	case keys.KeyYank:
		m.yankSelection()
	}
	return m, nil
}

func (m *home) handleVisualKey(name keys.KeyName) (tea.Model, tea.Cmd) {
	switch name {
	case keys.KeyQuit:
		return m, tea.Quit
	case keys.KeyClearSelection, keys.KeyVisual:
		m.list.ExitVisualMode()
		m.mode = modeNormal
		m.syncPane()
	case keys.KeyDown:
		m.list.SelectNext()
	case keys.KeyUp:
		m.list.SelectPrevious()
	case keys.KeyCycleDown:
		m.list.SelectNextCycling()
	case keys.KeyCycleUp:
		m.list.SelectPreviousCycling()
	case keys.KeyFirst:
		m.list.SelectFirst()
	case keys.KeyLast:
		m.list.SelectLast()
	case keys.KeyComplete:
		m.confirmComplete()
	case keys.KeyDelete:
		m.confirmDelete()
	case keys.KeyPostpone:
		m.startPostpone()
	case keys.KeyYank:
		m.yankSelection()
	}
	return m, nil
}

// yankSelection copies the selected titles to the system clipboard, one
// per line.
func (m *home) yankSelection() {
	tasks := m.list.SelectedTasks()
	if len(tasks) == 0 {
		return
	}
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		titles[i] = t.Title
	}
	if err := clipboard.WriteAll(strings.Join(titles, "\n")); err != nil {
		m.handleError(err)
	}
}
