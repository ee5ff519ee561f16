package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectClient links a project to one of the owner's clients.
type ProjectClient struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	ClientID  uuid.UUID
	Note      *string
	CreatedAt time.Time
}

// LinkedClient is a client as seen through a project link.
type LinkedClient struct {
	Client
	LinkID   uuid.UUID
	LinkNote *string
	LinkedAt time.Time
}
