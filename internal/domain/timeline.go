package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimelineEntry is a milestone on a project's timeline.
// OrderIndex orders entries within one project only.
type TimelineEntry struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Milestone   string
	Description *string
	Done        bool
	DoneAt      *time.Time
	OrderIndex  int
	CreatedAt   time.Time
}

// TimelineUpdateParams holds the fields to change. nil = don't change.
type TimelineUpdateParams struct {
	Milestone   *string
	Description *string
	Done        *bool
	OrderIndex  *int
}
