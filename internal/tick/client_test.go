package tick

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, routes map[string]any) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		key := r.Method + " " + r.URL.Path
		payload, ok := routes[key]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if payload == nil {
			w.WriteHeader(http.StatusOK)
			return
		}
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, "test-token")
}

func TestClient_Projects(t *testing.T) {
	_, c := newTestServer(t, map[string]any{
		"GET /project": []Project{{ID: "p1", Name: "Chores"}, {ID: "p2", Name: "Work"}},
	})
	projects, err := c.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Chores", projects[0].Name)
}

func TestClient_ProjectTasks(t *testing.T) {
	_, c := newTestServer(t, map[string]any{
		"GET /project/p1/data": projectData{
			Project: Project{ID: "p1"},
			Tasks:   []Task{{ID: "t1", ProjectID: "p1", Title: "Water plants"}},
		},
	})
	tasks, err := c.ProjectTasks(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Water plants", tasks[0].Title)
}

func TestClient_CompleteTask_NotFound(t *testing.T) {
	_, c := newTestServer(t, map[string]any{})
	err := c.CompleteTask(context.Background(), "p1", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task not found in project p1")
}

func TestClient_DeleteTask(t *testing.T) {
	_, c := newTestServer(t, map[string]any{
		"DELETE /project/p1/task/t1": nil,
	})
	assert.NoError(t, c.DeleteTask(context.Background(), "p1", "t1"))
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := NewClient(srv.URL, "test-token")

	_, err := c.Projects(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestAPITime_RoundTrip(t *testing.T) {
	orig := APITime{time.Date(2026, time.June, 10, 17, 30, 0, 0, time.UTC)}
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var parsed APITime
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, orig.Equal(parsed.Time))
}

func TestAPITime_EmptyMeansUnset(t *testing.T) {
	var parsed APITime
	require.NoError(t, json.Unmarshal([]byte(`""`), &parsed))
	assert.True(t, parsed.IsZero())

	data, err := json.Marshal(APITime{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))
}
