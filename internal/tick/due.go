package tick

import (
	"time"

	"github.com/kastheco/tickdo/internal/timeparse"
)

// Draft carries the user-entered fields of a create or edit. Nil Date and
// Clock mean the user left the corresponding input empty.
type Draft struct {
	Title   string
	Content string
	Date    *time.Time
	Clock   *timeparse.Clock
}

// BuildDue combines an optional date and optional clock time into a due
// timestamp. A date without a time yields an all-day task at local
// midnight. A time without a date attaches the time to the existing due
// date when there is one, otherwise to today; either way the task stops
// being all-day. Both empty clears the due date.
func BuildDue(d Draft, existing APITime, now time.Time) (due APITime, allDay bool) {
	switch {
	case d.Date != nil && d.Clock != nil:
		day := *d.Date
		t := time.Date(day.Year(), day.Month(), day.Day(), d.Clock.Hour, d.Clock.Minute, 0, 0, now.Location())
		return APITime{t}, false
	case d.Date != nil:
		day := *d.Date
		t := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
		return APITime{t}, true
	case d.Clock != nil:
		base := existing.Time
		if existing.IsZero() {
			base = now
		}
		base = base.In(now.Location())
		t := time.Date(base.Year(), base.Month(), base.Day(), d.Clock.Hour, d.Clock.Minute, 0, 0, now.Location())
		return APITime{t}, false
	default:
		return APITime{}, false
	}
}

// ApplyDraft writes a draft onto a task snapshot. The start date mirrors
// the due date so the service renders the task as a single point in time.
func ApplyDraft(task *Task, d Draft, now time.Time) {
	task.Title = d.Title
	task.Content = d.Content
	due, allDay := BuildDue(d, task.DueDate, now)
	task.DueDate = due
	task.StartDate = due
	task.IsAllDay = allDay
}
