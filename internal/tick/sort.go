package tick

import "sort"

// SortTasks orders tasks for display: tasks with a due date before tasks
// without one, earlier calendar days first, timed tasks before all-day
// tasks on the same day, then exact timestamp. Ties repeat the same rule on
// the start date and finally fall back to the service's sort-order key.
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return Compare(tasks[i], tasks[j]) < 0
	})
}

// Compare returns -1, 0, or 1 ordering a before, equal to, or after b.
func Compare(a, b Task) int {
	if c := compareDates(a.DueDate, b.DueDate, a.IsAllDay, b.IsAllDay); c != 0 {
		return c
	}
	if c := compareDates(a.StartDate, b.StartDate, a.IsAllDay, b.IsAllDay); c != 0 {
		return c
	}
	switch {
	case a.SortOrder < b.SortOrder:
		return -1
	case a.SortOrder > b.SortOrder:
		return 1
	default:
		return 0
	}
}

func compareDates(a, b APITime, aAllDay, bAllDay bool) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1 // unset sorts last
	case b.IsZero():
		return -1
	}

	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by || am != bm || ad != bd {
		if a.Before(b.Time) {
			return -1
		}
		return 1
	}

	// Same calendar day: timed tasks come before all-day tasks.
	if aAllDay != bAllDay {
		if aAllDay {
			return 1
		}
		return -1
	}

	switch {
	case a.Before(b.Time):
		return -1
	case a.After(b.Time):
		return 1
	default:
		return 0
	}
}
