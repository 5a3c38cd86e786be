package tick

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultBaseURL is the task service's Open API root.
const DefaultBaseURL = "https://api.ticktick.com/open/v1"

// InboxProjectID addresses the built-in inbox list.
const InboxProjectID = "inbox"

// Client talks to the task service over its REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client with the given bearer token. An empty baseURL
// selects the production endpoint.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{},
	}
}

// do issues a request and decodes the JSON response into out when out is
// non-nil. Non-2xx statuses become errors carrying the response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Projects lists the user's task lists. The inbox is not included; address
// it with InboxProjectID.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/project", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ProjectTasks returns all open tasks in one project.
func (c *Client) ProjectTasks(ctx context.Context, projectID string) ([]Task, error) {
	var data projectData
	if err := c.do(ctx, http.MethodGet, "/project/"+projectID+"/data", nil, &data); err != nil {
		return nil, err
	}
	return data.Tasks, nil
}

// CreateTask creates a task and returns the stored copy.
func (c *Client) CreateTask(ctx context.Context, task Task) (Task, error) {
	var created Task
	if err := c.do(ctx, http.MethodPost, "/task", task, &created); err != nil {
		return Task{}, err
	}
	return created, nil
}

// UpdateTask saves changes to an existing task.
func (c *Client) UpdateTask(ctx context.Context, task Task) (Task, error) {
	var updated Task
	if err := c.do(ctx, http.MethodPost, "/task/"+task.ID, task, &updated); err != nil {
		return Task{}, err
	}
	return updated, nil
}

// CompleteTask marks a task done. The service requires the owning project.
func (c *Client) CompleteTask(ctx context.Context, projectID, taskID string) error {
	path := fmt.Sprintf("/project/%s/task/%s/complete", projectID, taskID)
	err := c.do(ctx, http.MethodPost, path, nil, nil)
	if err != nil && isNotFound(err) {
		return fmt.Errorf("task not found in project %s", projectID)
	}
	return err
}

// DeleteTask removes a task permanently.
func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) error {
	path := fmt.Sprintf("/project/%s/task/%s", projectID, taskID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func isNotFound(err error) bool {
	return err != nil && bytes.Contains([]byte(err.Error()), []byte("status 404"))
}
