package tick

import (
	"context"
	"sync"
	"time"
)

// FetchAll retrieves every open task and partitions it into the three
// views. Today holds tasks due by the end of today, overdue included. Week
// holds tasks due after today but within the next seven days. Inbox holds
// the inbox list in full. Each view comes back sorted for display.
//
// Projects are fetched concurrently; the first error wins and the partial
// result is discarded.
func (c *Client) FetchAll(ctx context.Context, now time.Time) (Lists, error) {
	projects, err := c.Projects(ctx)
	if err != nil {
		return Lists{}, err
	}

	ids := make([]string, 0, len(projects)+1)
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	ids = append(ids, InboxProjectID)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		all      []Task
		inbox    []Task
		firstErr error
	)
	for _, id := range ids {
		wg.Add(1)
		go func(projectID string) {
			defer wg.Done()
			tasks, err := c.ProjectTasks(ctx, projectID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			all = append(all, tasks...)
			if projectID == InboxProjectID {
				inbox = append(inbox, tasks...)
			}
		}(id)
	}
	wg.Wait()
	if firstErr != nil {
		return Lists{}, firstErr
	}

	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	endOfWeek := endOfToday.AddDate(0, 0, 7)

	var lists Lists
	for _, t := range all {
		due := t.DueDate
		switch {
		case due.IsZero():
			// No due date: visible only via the inbox view.
		case !due.After(endOfToday):
			lists.Today = append(lists.Today, t)
		case !due.After(endOfWeek):
			lists.Week = append(lists.Week, t)
		}
	}
	lists.Inbox = inbox

	SortTasks(lists.Today)
	SortTasks(lists.Week)
	SortTasks(lists.Inbox)
	return lists, nil
}
