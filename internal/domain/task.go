package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinTaskPriority     = 1
	MaxTaskPriority     = 5
	DefaultTaskPriority = 3
)

// Task is a unit of work inside a project.
type Task struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Title       string
	Description *string
	Done        bool
	Priority    int
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskUpdateParams holds the fields to change. nil = don't change.
type TaskUpdateParams struct {
	Title        *string
	Description  *string
	Done         *bool
	Priority     *int
	DueDate      *time.Time
	ClearDueDate bool
}
