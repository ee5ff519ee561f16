package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a contact record owned by a user.
type Client struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Email     *string
	Phone     *string
	Company   *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientUpdateParams holds the fields to change. nil = don't change;
// a pointer to "" clears a nullable column.
type ClientUpdateParams struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Notes   *string
}
