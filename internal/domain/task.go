package domain

import "errors"

// Task-specific validation errors
var (
	// ErrTitleEmpty is returned when a task title is empty.
	ErrTitleEmpty = errors.New("task title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds 200 characters.
	ErrTitleTooLong = errors.New("task title must be at most 200 characters")

	// ErrDescriptionTooLong is returned when a task description exceeds 2000 characters.
	ErrDescriptionTooLong = errors.New("task description must be at most 2000 characters")

	// ErrInvalidStatus is returned when a task status is not one of the known values.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidPriority is returned when a task priority is not one of the known values.
	ErrInvalidPriority = errors.New("invalid task priority")
)

// TaskStatus identifies the progress state of a task.
type TaskStatus string

// Known task statuses, as accepted by the task endpoints.
const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// IsValid reports whether s is one of the known task statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// TaskPriority identifies the urgency of a task.
type TaskPriority string

// Known task priorities, as accepted by the task endpoints.
const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// IsValid reports whether p is one of the known task priorities.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a task as returned by the API. IDs and timestamps are
// server-assigned; the client never invents them. The JSON keys match
// the wire format of the task endpoints.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     string       `json:"dueDate,omitempty"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

// TaskPayload carries the mutable fields of a task for create and
// update calls. Updates are full replacements; there is no patch shape.
type TaskPayload struct {
	Title       string       `json:"title"                 validate:"required,max=200"`
	Description string       `json:"description,omitempty" validate:"max=2000"`
	Status      TaskStatus   `json:"status,omitempty"`
	Priority    TaskPriority `json:"priority,omitempty"`
	DueDate     string       `json:"dueDate,omitempty"`
}

// Validate checks the payload against the task field constraints.
// Status and priority are optional but must be known values when set.
func (p *TaskPayload) Validate() error {
	if p.Title == "" {
		return ErrTitleEmpty
	}
	if len(p.Title) > 200 {
		return ErrTitleTooLong
	}
	if len(p.Description) > 2000 {
		return ErrDescriptionTooLong
	}
	if p.Status != "" && !p.Status.IsValid() {
		return ErrInvalidStatus
	}
	if p.Priority != "" && !p.Priority.IsValid() {
		return ErrInvalidPriority
	}
	return nil
}
