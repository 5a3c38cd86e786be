// Package tick is the client for the remote task service. It owns the wire
// types, the REST calls, the three-view fetch, and the display ordering.
package tick

import (
	"fmt"
	"strings"
	"time"
)

// apiTimeLayout is the timestamp format the service speaks.
const apiTimeLayout = "2006-01-02T15:04:05.000-0700"

// APITime wraps time.Time with the service's JSON encoding. The zero value
// marshals to an empty string and means "unset".
type APITime struct {
	time.Time
}

func (t APITime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(apiTimeLayout) + `"`), nil
}

func (t *APITime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(apiTimeLayout, s)
	if err != nil {
		// Some endpoints omit milliseconds.
		parsed, err = time.Parse("2006-01-02T15:04:05-0700", s)
		if err != nil {
			return fmt.Errorf("parse api time %q: %w", s, err)
		}
	}
	t.Time = parsed
	return nil
}

// Task is a read-only snapshot of a remote task. A zero DueDate means the
// task has no due date and sorts after everything that has one.
type Task struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	DueDate   APITime `json:"dueDate"`
	StartDate APITime `json:"startDate"`
	IsAllDay  bool    `json:"isAllDay"`
	Priority  int     `json:"priority"`
	SortOrder int64   `json:"sortOrder"`
}

// Project is a remote task list.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// projectData is the per-project payload returned by the service.
type projectData struct {
	Project Project `json:"project"`
	Tasks   []Task  `json:"tasks"`
}

// Lists holds the three task views of one full fetch.
type Lists struct {
	Today []Task
	Week  []Task
	Inbox []Task
}
