// Package taskdb persists the last fetched task lists in a local SQLite
// database so the UI has something to draw immediately after startup while
// the first live refresh is still in flight.
package taskdb

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/kastheco/tickdo/internal/tick"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS task_snapshot (
	view       TEXT    NOT NULL,
	position   INTEGER NOT NULL,
	id         TEXT    NOT NULL,
	project_id TEXT    NOT NULL DEFAULT '',
	title      TEXT    NOT NULL DEFAULT '',
	content    TEXT    NOT NULL DEFAULT '',
	due_date   INTEGER NOT NULL DEFAULT 0,
	start_date INTEGER NOT NULL DEFAULT 0,
	is_all_day INTEGER NOT NULL DEFAULT 0,
	priority   INTEGER NOT NULL DEFAULT 0,
	sort_order INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (view, position)
);
`

// Store is a snapshot store backed by a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the snapshot database at dbPath and runs the
// schema. Use ":memory:" for an in-memory database in tests.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if _, err := db.Exec(snapshotSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run snapshot schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored snapshot with the given lists inside one
// transaction. A failed save leaves the previous snapshot intact.
func (s *Store) Save(lists tick.Lists) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM task_snapshot`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	const q = `
		INSERT INTO task_snapshot
			(view, position, id, project_id, title, content,
			 due_date, start_date, is_all_day, priority, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	insert := func(view string, tasks []tick.Task) error {
		for i, t := range tasks {
			_, err := tx.Exec(q, view, i, t.ID, t.ProjectID, t.Title, t.Content,
				unixOrZero(t.DueDate), unixOrZero(t.StartDate),
				boolToInt(t.IsAllDay), t.Priority, t.SortOrder)
			if err != nil {
				return fmt.Errorf("insert snapshot row: %w", err)
			}
		}
		return nil
	}
	for view, tasks := range map[string][]tick.Task{
		"today": lists.Today, "week": lists.Week, "inbox": lists.Inbox,
	} {
		if err := insert(view, tasks); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load returns the stored snapshot. An empty database yields empty lists.
func (s *Store) Load() (tick.Lists, error) {
	const q = `
		SELECT view, id, project_id, title, content,
		       due_date, start_date, is_all_day, priority, sort_order
		FROM task_snapshot ORDER BY view, position
	`
	rows, err := s.db.Query(q)
	if err != nil {
		return tick.Lists{}, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	var lists tick.Lists
	for rows.Next() {
		var view string
		var t tick.Task
		var due, start int64
		var allDay int
		if err := rows.Scan(&view, &t.ID, &t.ProjectID, &t.Title, &t.Content,
			&due, &start, &allDay, &t.Priority, &t.SortOrder); err != nil {
			return tick.Lists{}, fmt.Errorf("scan snapshot row: %w", err)
		}
		t.DueDate = timeOrZero(due)
		t.StartDate = timeOrZero(start)
		t.IsAllDay = allDay != 0

		switch view {
		case "today":
			lists.Today = append(lists.Today, t)
		case "week":
			lists.Week = append(lists.Week, t)
		case "inbox":
			lists.Inbox = append(lists.Inbox, t)
		}
	}
	return lists, rows.Err()
}

func unixOrZero(t tick.APITime) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func timeOrZero(unix int64) tick.APITime {
	if unix == 0 {
		return tick.APITime{}
	}
	return tick.APITime{Time: time.Unix(unix, 0).UTC()}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
