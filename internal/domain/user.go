package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the application-level identity. Every other entity is scoped to exactly one user.
type User struct {
	ID          uuid.UUID
	Email       string
	DisplayName *string
	AvatarURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Principal is what the authentication provider asserts about the caller.
// Only ID is trusted for authorization; the rest seeds the User record.
type Principal struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Name     string
}

// DisplayName derives the display name for a newly provisioned user:
// the explicit profile name, then the alternate name, then the local part of the email.
// Returns an empty string when nothing usable is present.
func (p Principal) DisplayName() string {
	if name := strings.TrimSpace(p.FullName); name != "" {
		return name
	}
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	email := strings.TrimSpace(p.Email)
	if at := strings.IndexByte(email, '@'); at >= 0 {
		return email[:at]
	}
	return email
}

// NewUserFromPrincipal builds the User record created on first authentication.
func NewUserFromPrincipal(p Principal, now time.Time) User {
	u := User{
		ID:        p.ID,
		Email:     NormalizeEmail(p.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if name := p.DisplayName(); name != "" {
		u.DisplayName = &name
	}
	return u
}

// UserUpdateParams holds profile fields to change. nil = don't change;
// a pointer to "" clears the field.
type UserUpdateParams struct {
	DisplayName *string
	AvatarURL   *string
}
