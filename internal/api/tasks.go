package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gcunha/taskdeck/internal/domain"
)

// Wire envelopes of the task endpoints.
type (
	tasksEnvelope struct {
		Tasks []domain.Task `json:"tasks"`
	}
	taskEnvelope struct {
		Task domain.Task `json:"task"`
	}
)

// ListTasks fetches the tasks matching the filters via GET /tasks.
// Empty filter fields are omitted from the query entirely.
func (c *Client) ListTasks(ctx context.Context, bearer string, filters domain.Filters) ([]domain.Task, error) {
	var resp tasksEnvelope
	if err := c.do(ctx, http.MethodGet, "/tasks", filters.QueryValues(), bearer, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// CreateTask creates a task via POST /tasks and returns the
// server-assigned result.
func (c *Client) CreateTask(ctx context.Context, bearer string, payload domain.TaskPayload) (*domain.Task, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	var resp taskEnvelope
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, bearer, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Task, nil
}

// UpdateTask replaces the mutable fields of the task via PUT
// /tasks/{id}.
func (c *Client) UpdateTask(ctx context.Context, bearer, id string, payload domain.TaskPayload) (*domain.Task, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	var resp taskEnvelope
	path := fmt.Sprintf("/tasks/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodPut, path, nil, bearer, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Task, nil
}

// DeleteTask removes the task via DELETE /tasks/{id}.
func (c *Client) DeleteTask(ctx context.Context, bearer, id string) error {
	path := fmt.Sprintf("/tasks/%s", url.PathEscape(id))
	return c.do(ctx, http.MethodDelete, path, nil, bearer, nil, nil)
}
