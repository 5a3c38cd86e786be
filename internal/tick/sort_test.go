package tick

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(t time.Time) APITime { return APITime{t} }

var day = time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

func TestCompare_UnsetDueSortsLast(t *testing.T) {
	set := Task{DueDate: at(day.Add(9 * time.Hour))}
	unset := Task{}
	assert.Equal(t, -1, Compare(set, unset))
	assert.Equal(t, 1, Compare(unset, set))
}

func TestCompare_TimedBeforeAllDaySameDay(t *testing.T) {
	timed := Task{DueDate: at(day.Add(17 * time.Hour))}
	allDay := Task{DueDate: at(day), IsAllDay: true}
	assert.Equal(t, -1, Compare(timed, allDay))
	assert.Equal(t, 1, Compare(allDay, timed))
}

func TestCompare_EarlierDayFirst(t *testing.T) {
	// An all-day task on an earlier day still beats a timed task later.
	early := Task{DueDate: at(day), IsAllDay: true}
	late := Task{DueDate: at(day.AddDate(0, 0, 1).Add(8 * time.Hour))}
	assert.Equal(t, -1, Compare(early, late))
}

func TestCompare_SameDayByTimestamp(t *testing.T) {
	nine := Task{DueDate: at(day.Add(9 * time.Hour))}
	ten := Task{DueDate: at(day.Add(10 * time.Hour))}
	assert.Equal(t, -1, Compare(nine, ten))
}

func TestCompare_StartDateBreaksTies(t *testing.T) {
	due := at(day.Add(12 * time.Hour))
	a := Task{DueDate: due, StartDate: at(day.Add(9 * time.Hour))}
	b := Task{DueDate: due, StartDate: at(day.Add(11 * time.Hour))}
	assert.Equal(t, -1, Compare(a, b))
}

func TestCompare_SortOrderBreaksFinalTies(t *testing.T) {
	a := Task{SortOrder: 10}
	b := Task{SortOrder: 20}
	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 0, Compare(a, a))
}

func TestSortTasks(t *testing.T) {
	unset := Task{ID: "unset"}
	allDay := Task{ID: "allday", DueDate: at(day), IsAllDay: true}
	timed := Task{ID: "timed", DueDate: at(day.Add(17 * time.Hour))}
	tomorrow := Task{ID: "tomorrow", DueDate: at(day.AddDate(0, 0, 1))}

	tasks := []Task{unset, tomorrow, allDay, timed}
	SortTasks(tasks)

	var ids []string
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"timed", "allday", "tomorrow", "unset"}, ids)
}
