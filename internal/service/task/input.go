package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

const (
	maxTitleLen       = 300
	maxDescriptionLen = 5000
)

// CreateTaskInput holds the parameters for creating a task.
// A nil Priority means DefaultTaskPriority.
type CreateTaskInput struct {
	ProjectID   uuid.UUID
	Title       string
	Description *string
	Done        bool
	Priority    *int
	DueDate     *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	errs = checkTitle(errs, domain.CleanText(i.Title))
	errs = checkRest(errs, i.Description, i.Priority)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateTaskInput) task() *domain.Task {
	priority := domain.DefaultTaskPriority
	if i.Priority != nil {
		priority = *i.Priority
	}
	return &domain.Task{
		ProjectID:   i.ProjectID,
		Title:       domain.CleanText(i.Title),
		Description: domain.OptionalText(i.Description),
		Done:        i.Done,
		Priority:    priority,
		DueDate:     dateOnly(i.DueDate),
	}
}

// UpdateTaskInput holds the parameters for a partial task update.
// nil = don't change; ptr("") clears the description.
type UpdateTaskInput struct {
	TaskID       uuid.UUID
	Title        *string
	Description  *string
	Done         *bool
	Priority     *int
	DueDate      *time.Time
	ClearDueDate bool
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.Done == nil && i.Priority == nil && i.DueDate == nil && !i.ClearDueDate {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = checkTitle(errs, domain.CleanText(*i.Title))
	}
	errs = checkRest(errs, i.Description, i.Priority)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateTaskInput) params() domain.TaskUpdateParams {
	p := domain.TaskUpdateParams{
		Done:         i.Done,
		Priority:     i.Priority,
		DueDate:      dateOnly(i.DueDate),
		ClearDueDate: i.ClearDueDate,
	}
	if i.Title != nil {
		title := domain.CleanText(*i.Title)
		p.Title = &title
	}
	if i.Description != nil {
		desc := strings.TrimSpace(*i.Description)
		p.Description = &desc
	}
	return p
}

func checkTitle(errs []domain.FieldError, title string) []domain.FieldError {
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}
	return errs
}

func checkRest(errs []domain.FieldError, description *string, priority *int) []domain.FieldError {
	if description != nil && len(strings.TrimSpace(*description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if priority != nil && (*priority < domain.MinTaskPriority || *priority > domain.MaxTaskPriority) {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be between 1 and 5"})
	}
	return errs
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &day
}
