package timeline

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

const (
	maxMilestoneLen   = 200
	maxDescriptionLen = 5000
	maxEntries        = 500
)

// CreateEntryInput holds the parameters for adding a milestone.
// A nil OrderIndex appends the entry after the last one.
type CreateEntryInput struct {
	ProjectID   uuid.UUID
	Milestone   string
	Description *string
	Done        bool
	OrderIndex  *int
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	errs = checkMilestone(errs, domain.CleanText(i.Milestone))
	errs = checkRest(errs, i.Description, i.OrderIndex)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds the parameters for a partial entry update.
type UpdateEntryInput struct {
	EntryID     uuid.UUID
	Milestone   *string
	Description *string
	Done        *bool
	OrderIndex  *int
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.Milestone == nil && i.Description == nil && i.Done == nil && i.OrderIndex == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Milestone != nil {
		errs = checkMilestone(errs, domain.CleanText(*i.Milestone))
	}
	errs = checkRest(errs, i.Description, i.OrderIndex)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateEntryInput) params() domain.TimelineUpdateParams {
	p := domain.TimelineUpdateParams{
		Done:       i.Done,
		OrderIndex: i.OrderIndex,
	}
	if i.Milestone != nil {
		m := domain.CleanText(*i.Milestone)
		p.Milestone = &m
	}
	if i.Description != nil {
		d := strings.TrimSpace(*i.Description)
		p.Description = &d
	}
	return p
}

// ReorderInput lists every entry of a project in the desired order.
type ReorderInput struct {
	ProjectID uuid.UUID
	EntryIDs  []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReorderInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if len(i.EntryIDs) > maxEntries {
		errs = append(errs, domain.FieldError{Field: "entry_ids", Message: "max 500 entries"})
	}
	seen := make(map[uuid.UUID]struct{}, len(i.EntryIDs))
	for _, id := range i.EntryIDs {
		if _, dup := seen[id]; dup || id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "entry_ids", Message: "must be distinct entry ids"})
			break
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkMilestone(errs []domain.FieldError, milestone string) []domain.FieldError {
	if milestone == "" {
		return append(errs, domain.FieldError{Field: "milestone", Message: "required"})
	}
	if len(milestone) > maxMilestoneLen {
		errs = append(errs, domain.FieldError{Field: "milestone", Message: "max 200 characters"})
	}
	return errs
}

func checkRest(errs []domain.FieldError, description *string, orderIndex *int) []domain.FieldError {
	if description != nil && len(strings.TrimSpace(*description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if orderIndex != nil {
		switch {
		case *orderIndex < 0:
			errs = append(errs, domain.FieldError{Field: "order_index", Message: "must be non-negative"})
		case *orderIndex > math.MaxInt32:
			errs = append(errs, domain.FieldError{Field: "order_index", Message: "must be at most 2147483647"})
		}
	}
	return errs
}
