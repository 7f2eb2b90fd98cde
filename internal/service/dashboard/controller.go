// Package dashboard binds the task repository and the session store
// under one policy: any authorization-denied response forces a logout,
// and every successful mutation is followed by a full re-fetch of the
// list under the currently active filters, so the displayed list
// always reflects server truth.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gcunha/taskdeck/internal/api"
	"github.com/gcunha/taskdeck/internal/domain"
	"github.com/gcunha/taskdeck/internal/notify"
	"github.com/gcunha/taskdeck/internal/platform/logger"
	"github.com/gcunha/taskdeck/internal/session"
)

// Forced-logout messages per operation.
const (
	msgUnauthorizedLoad   = "Invalid or expired token. Please log in again."
	msgUnauthorizedSubmit = "Session expired during the operation."
	msgUnauthorizedDelete = "Your session expired during the deletion."
)

// Repository is the slice of the API client the controller needs.
type Repository interface {
	ListTasks(ctx context.Context, bearer string, filters domain.Filters) ([]domain.Task, error)
	CreateTask(ctx context.Context, bearer string, payload domain.TaskPayload) (*domain.Task, error)
	UpdateTask(ctx context.Context, bearer, id string, payload domain.TaskPayload) (*domain.Task, error)
	DeleteTask(ctx context.Context, bearer, id string) error
}

// SessionStore is the slice of the session store the controller needs.
type SessionStore interface {
	Current() session.Session
	Logout(reason session.LogoutReason, opts *session.LogoutOptions)
}

// Controller orchestrates the task list view. The in-memory list is a
// cache refilled only from server responses, never locally merged.
type Controller struct {
	repo     Repository
	sessions SessionStore
	notifier notify.Notifier
	log      *slog.Logger

	// Confirm gates deletions. When nil, deletions proceed.
	confirm func(domain.Task) bool

	mu      sync.Mutex
	filters domain.Filters
	tasks   []domain.Task
	editing *domain.Task
}

// New creates a Controller. confirm may be nil to skip delete
// confirmation (equivalent to a --yes flag).
func New(
	repo Repository,
	sessions SessionStore,
	notifier notify.Notifier,
	confirm func(domain.Task) bool,
	log *slog.Logger,
) *Controller {
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		repo:     repo,
		sessions: sessions,
		notifier: notifier,
		confirm:  confirm,
		log:      log,
	}
}

// Tasks returns a copy of the current list snapshot.
func (c *Controller) Tasks() []domain.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Filters returns the currently active filter criteria.
func (c *Controller) Filters() domain.Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// SetFilters replaces the filter criteria and refreshes the list. The
// zero value resets all filters.
func (c *Controller) SetFilters(ctx context.Context, filters domain.Filters) error {
	c.mu.Lock()
	c.filters = filters
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// BeginEdit marks task as the target of the next Submit, which then
// becomes a full-replace update instead of a create.
func (c *Controller) BeginEdit(task domain.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := task
	c.editing = &t
}

// CancelEdit clears the edit target.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing = nil
}

// Editing returns the current edit target, if any.
func (c *Controller) Editing() (domain.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing == nil {
		return domain.Task{}, false
	}
	return *c.editing, true
}

// Refresh fetches the list under the current filters and replaces the
// snapshot. A 401 forces a logout and leaves the snapshot untouched;
// other failures are surfaced as a notification and keep the previous
// snapshot.
func (c *Controller) Refresh(ctx context.Context) error {
	sess := c.sessions.Current()
	if !sess.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	tasks, err := c.repo.ListTasks(ctx, sess.Token, c.Filters())
	if err != nil {
		if api.IsUnauthorized(err) {
			c.forceLogout(msgUnauthorizedLoad)
			return ErrLoggedOut
		}
		c.notifier.Error(userMessage(err, "Failed to load tasks."))
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	c.mu.Lock()
	c.tasks = tasks
	c.mu.Unlock()

	logger.FromContextOrDefault(ctx, c.log).Debug("task list refreshed", "count", len(tasks))
	return nil
}

// Submit creates a task, or updates the edit target when one is set.
// On success the edit target is cleared and the list is re-fetched
// under the currently active filters.
func (c *Controller) Submit(ctx context.Context, payload domain.TaskPayload) error {
	sess := c.sessions.Current()
	if !sess.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	editing, isUpdate := c.Editing()

	var err error
	if isUpdate {
		_, err = c.repo.UpdateTask(ctx, sess.Token, editing.ID, payload)
	} else {
		_, err = c.repo.CreateTask(ctx, sess.Token, payload)
	}
	if err != nil {
		if api.IsUnauthorized(err) {
			c.forceLogout(msgUnauthorizedSubmit)
			return ErrLoggedOut
		}
		c.notifier.Error(userMessage(err, "Unexpected error."))
		return fmt.Errorf("failed to save task: %w", err)
	}

	if isUpdate {
		c.notifier.Success("Task updated successfully!")
	} else {
		c.notifier.Success("Task created successfully!")
	}
	c.CancelEdit()

	return c.Refresh(ctx)
}

// Delete removes a task after explicit confirmation. Declining the
// confirmation returns ErrDeleteCanceled without any network call. On
// success the list is re-fetched under the current filters.
func (c *Controller) Delete(ctx context.Context, task domain.Task) error {
	sess := c.sessions.Current()
	if !sess.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	if c.confirm != nil && !c.confirm(task) {
		return ErrDeleteCanceled
	}

	if err := c.repo.DeleteTask(ctx, sess.Token, task.ID); err != nil {
		if api.IsUnauthorized(err) {
			c.forceLogout(msgUnauthorizedDelete)
			return ErrLoggedOut
		}
		c.notifier.Error(userMessage(err, "Unexpected error."))
		return fmt.Errorf("failed to delete task: %w", err)
	}

	c.notifier.Success("Task deleted.")

	c.mu.Lock()
	if c.editing != nil && c.editing.ID == task.ID {
		c.editing = nil
	}
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// forceLogout clears the session with reason unauthorized. The caller
// abandons whatever it was doing: no retry, no partial update.
func (c *Controller) forceLogout(message string) {
	c.sessions.Logout(session.ReasonUnauthorized, &session.LogoutOptions{Message: message})
}

// userMessage extracts a presentable message from an error, preferring
// the server-provided one.
func userMessage(err error, fallback string) string {
	if apiErr, ok := api.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
