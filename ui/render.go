package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kastheco/tickdo/internal/tick"
)

// String renders the tab bar and task rows for the current view.
func (l *TaskList) String() string {
	var b strings.Builder
	b.WriteString(l.renderTabs())
	b.WriteString("\n\n")

	if len(l.tasks) == 0 {
		b.WriteString(emptyStyle.Render("no tasks — n to create, r to refresh"))
		return b.String()
	}

	selected := map[int]bool{}
	for _, i := range l.SelectedIndices() {
		selected[i] = true
	}

	now := time.Now()
	for i, task := range l.tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(l.renderRow(i, task, selected[i], now))
	}
	return b.String()
}

func (l *TaskList) renderTabs() string {
	var tabs []string
	for v := ViewToday; v <= ViewInbox; v++ {
		style := tabInactiveStyle
		if v == l.view {
			style = tabActiveStyle
		}
		tabs = append(tabs, style.Render(v.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (l *TaskList) renderRow(i int, task tick.Task, inSpan bool, now time.Time) string {
	style := rowStyle
	marker := "  "
	switch {
	case l.visualActive && inSpan:
		style = rowVisualStyle
		marker = "▌ "
	case i == l.selectedIdx:
		style = rowSelectedStyle
		marker = "> "
	}

	due := formatDue(task, now)
	prio := priorityMarker(task.Priority)

	width := l.width
	if width <= 0 {
		width = 80
	}
	titleWidth := width - runewidth.StringWidth(marker) - runewidth.StringWidth(due) - runewidth.StringWidth(prio) - 3
	if titleWidth < 8 {
		titleWidth = 8
	}
	title := runewidth.Truncate(task.Title, titleWidth, "…")
	title = runewidth.FillRight(title, titleWidth)

	dueRendered := dueStyle.Render(due)
	if !task.DueDate.IsZero() && task.DueDate.Before(now) {
		dueRendered = overdueStyle.Render(due)
	}

	return style.Render(marker+prio+" "+title) + " " + dueRendered
}

// formatDue renders a task's due timestamp for a list row.
func formatDue(task tick.Task, now time.Time) string {
	if task.DueDate.IsZero() {
		return ""
	}
	due := task.DueDate.In(now.Location())
	day := due.Format("Jan 2")
	if task.IsAllDay {
		return day
	}
	return fmt.Sprintf("%s %s", day, due.Format("15:04"))
}

func priorityMarker(priority int) string {
	switch priority {
	case 5:
		return "!!"
	case 3:
		return " !"
	case 1:
		return " ·"
	default:
		return "  "
	}
}
