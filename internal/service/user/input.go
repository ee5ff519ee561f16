package user

import (
	"strings"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

const (
	maxDisplayNameLen = 255
	maxAvatarURLLen   = 512
)

// UpdateProfileInput holds parameters for profile update operation.
// nil = don't change; a pointer to "" clears the field.
type UpdateProfileInput struct {
	DisplayName *string
	AvatarURL   *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.DisplayName == nil && i.AvatarURL == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.DisplayName != nil && len(strings.TrimSpace(*i.DisplayName)) > maxDisplayNameLen {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}
	if i.AvatarURL != nil && len(strings.TrimSpace(*i.AvatarURL)) > maxAvatarURLLen {
		errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProfileInput) params() domain.UserUpdateParams {
	var p domain.UserUpdateParams
	if i.DisplayName != nil {
		name := domain.CleanText(*i.DisplayName)
		p.DisplayName = &name
	}
	if i.AvatarURL != nil {
		url := strings.TrimSpace(*i.AvatarURL)
		p.AvatarURL = &url
	}
	return p
}
