package tick

import (
	"testing"
	"time"

	"github.com/kastheco/tickdo/internal/timeparse"
	"github.com/stretchr/testify/assert"
)

var refNow = time.Date(2026, time.June, 10, 15, 0, 0, 0, time.UTC)

func TestBuildDue_DateAndTime(t *testing.T) {
	date := time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC)
	clock := &timeparse.Clock{Hour: 17, Minute: 30}

	due, allDay := BuildDue(Draft{Date: &date, Clock: clock}, APITime{}, refNow)
	assert.False(t, allDay)
	assert.Equal(t, time.Date(2026, time.June, 12, 17, 30, 0, 0, time.UTC), due.Time)
}

func TestBuildDue_DateOnlyIsAllDay(t *testing.T) {
	date := time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC)

	due, allDay := BuildDue(Draft{Date: &date}, APITime{}, refNow)
	assert.True(t, allDay)
	assert.Equal(t, date, due.Time)
}

func TestBuildDue_TimeOnlyKeepsExistingDate(t *testing.T) {
	existing := APITime{time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)}
	clock := &timeparse.Clock{Hour: 9, Minute: 0}

	due, allDay := BuildDue(Draft{Clock: clock}, existing, refNow)
	assert.False(t, allDay)
	assert.Equal(t, time.Date(2026, time.June, 20, 9, 0, 0, 0, time.UTC), due.Time)
}

func TestBuildDue_TimeOnlyNoExistingDateUsesToday(t *testing.T) {
	clock := &timeparse.Clock{Hour: 9, Minute: 15}

	due, _ := BuildDue(Draft{Clock: clock}, APITime{}, refNow)
	assert.Equal(t, time.Date(2026, time.June, 10, 9, 15, 0, 0, time.UTC), due.Time)
}

func TestBuildDue_BothEmptyClearsDue(t *testing.T) {
	due, allDay := BuildDue(Draft{}, APITime{refNow}, refNow)
	assert.True(t, due.IsZero())
	assert.False(t, allDay)
}

func TestApplyDraft_SetsStartDateToDueDate(t *testing.T) {
	task := Task{ID: "t1", Title: "old"}
	date := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	ApplyDraft(&task, Draft{Title: "new", Content: "notes", Date: &date}, refNow)

	assert.Equal(t, "new", task.Title)
	assert.Equal(t, "notes", task.Content)
	assert.Equal(t, task.DueDate, task.StartDate)
	assert.True(t, task.IsAllDay)
}
