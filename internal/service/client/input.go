package client

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

const (
	maxNameLen    = 200
	maxEmailLen   = 254
	maxPhoneLen   = 50
	maxCompanyLen = 200
	maxNotesLen   = 5000
)

// CreateClientInput holds the parameters for creating a client.
type CreateClientInput struct {
	Name    string
	Email   *string
	Phone   *string
	Company *string
	Notes   *string
}

// Validate checks all fields and collects all errors.
func (i CreateClientInput) Validate() error {
	var errs []domain.FieldError

	name := domain.CleanText(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	errs = checkName(errs, name)
	errs = checkContact(errs, i.Email, i.Phone, i.Company, i.Notes)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateClientInput holds the parameters for updating a client.
// nil = don't change; ptr("") clears a nullable field.
type UpdateClientInput struct {
	ClientID uuid.UUID
	Name     *string
	Email    *string
	Phone    *string
	Company  *string
	Notes    *string
}

// Validate checks all fields and collects all errors.
func (i UpdateClientInput) Validate() error {
	var errs []domain.FieldError

	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.Name == nil && i.Email == nil && i.Phone == nil && i.Company == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := domain.CleanText(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		errs = checkName(errs, name)
	}
	errs = checkContact(errs, i.Email, i.Phone, i.Company, i.Notes)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateClientInput) params() domain.ClientUpdateParams {
	var p domain.ClientUpdateParams
	if i.Name != nil {
		name := domain.CleanText(*i.Name)
		p.Name = &name
	}
	p.Email = trimmed(i.Email)
	p.Phone = trimmed(i.Phone)
	p.Company = trimmed(i.Company)
	p.Notes = trimmed(i.Notes)
	return p
}

// ListClientsInput holds search and pagination parameters.
type ListClientsInput struct {
	Search string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListClientsInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkName(errs []domain.FieldError, name string) []domain.FieldError {
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}

func checkContact(errs []domain.FieldError, email, phone, company, notes *string) []domain.FieldError {
	if email != nil {
		e := strings.TrimSpace(*email)
		if len(e) > maxEmailLen {
			errs = append(errs, domain.FieldError{Field: "email", Message: "max 254 characters"})
		} else if e != "" && !strings.Contains(e, "@") {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}
	if phone != nil && len(strings.TrimSpace(*phone)) > maxPhoneLen {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "max 50 characters"})
	}
	if company != nil && len(strings.TrimSpace(*company)) > maxCompanyLen {
		errs = append(errs, domain.FieldError{Field: "company", Message: "max 200 characters"})
	}
	if notes != nil && len(strings.TrimSpace(*notes)) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}
	return errs
}

// trimmed trims s without dropping it, so ptr("") still means "clear".
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
