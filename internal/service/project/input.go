package project

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 10000
	maxNoteLen        = 1000
)

// CreateProjectInput holds the parameters for creating a project.
// Zero-valued enums fall back to client / pending / unpaid.
type CreateProjectInput struct {
	Title        string
	Description  *string
	Kind         domain.ProjectKind
	Status       domain.ProjectStatus
	PaymentState domain.PaymentState
	ProgressPct  int
	Budget       *float64
	PaidAmount   float64
	StartDate    *time.Time
	EndDate      *time.Time
	Deadline     *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	errs := checkProject(nil, i.project())
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateProjectInput) project() domain.Project {
	p := domain.Project{
		Title:        domain.CleanText(i.Title),
		Description:  domain.OptionalText(i.Description),
		Kind:         i.Kind,
		Status:       i.Status,
		PaymentState: i.PaymentState,
		ProgressPct:  i.ProgressPct,
		Budget:       roundCents(i.Budget),
		PaidAmount:   domain.RoundCents(i.PaidAmount),
		StartDate:    dateOnly(i.StartDate),
		EndDate:      dateOnly(i.EndDate),
		Deadline:     dateOnly(i.Deadline),
	}
	if p.Kind == "" {
		p.Kind = domain.ProjectKindClient
	}
	if p.Status == "" {
		p.Status = domain.ProjectStatusPending
	}
	if p.PaymentState == "" {
		p.PaymentState = domain.PaymentStateUnpaid
	}
	return p
}

// UpdateProjectInput holds the parameters for a partial project update.
// nil = don't change. The Clear* flags set the nullable column to NULL.
type UpdateProjectInput struct {
	ProjectID      uuid.UUID
	Title          *string
	Description    *string
	Kind           *domain.ProjectKind
	Status         *domain.ProjectStatus
	PaymentState   *domain.PaymentState
	ProgressPct    *int
	Budget         *float64
	ClearBudget    bool
	PaidAmount     *float64
	StartDate      *time.Time
	ClearStartDate bool
	EndDate        *time.Time
	ClearEndDate   bool
	Deadline       *time.Time
	ClearDeadline  bool
}

// Validate checks the fields that can be judged without the stored row.
// The merged state is checked again inside the update transaction.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.isEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := domain.CleanText(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else if len(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 10000 characters"})
	}
	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "invalid value"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.PaymentState != nil && !i.PaymentState.IsValid() {
		errs = append(errs, domain.FieldError{Field: "payment_state", Message: "invalid value"})
	}
	if i.ProgressPct != nil && (*i.ProgressPct < domain.MinProgress || *i.ProgressPct > domain.MaxProgress) {
		errs = append(errs, domain.FieldError{Field: "progress_pct", Message: "must be between 0 and 100"})
	}
	if budget := roundCents(i.Budget); budget != nil {
		errs = checkAmount(errs, "budget", *budget)
	}
	if paid := roundCents(i.PaidAmount); paid != nil {
		errs = checkAmount(errs, "paid_amount", *paid)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProjectInput) isEmpty() bool {
	return i.Title == nil && i.Description == nil && i.Kind == nil && i.Status == nil &&
		i.PaymentState == nil && i.ProgressPct == nil && i.Budget == nil && !i.ClearBudget &&
		i.PaidAmount == nil && i.StartDate == nil && !i.ClearStartDate && i.EndDate == nil &&
		!i.ClearEndDate && i.Deadline == nil && !i.ClearDeadline
}

func (i UpdateProjectInput) params() domain.ProjectUpdateParams {
	p := domain.ProjectUpdateParams{
		Kind:           i.Kind,
		Status:         i.Status,
		PaymentState:   i.PaymentState,
		ProgressPct:    i.ProgressPct,
		Budget:         roundCents(i.Budget),
		ClearBudget:    i.ClearBudget,
		PaidAmount:     roundCents(i.PaidAmount),
		StartDate:      dateOnly(i.StartDate),
		ClearStartDate: i.ClearStartDate,
		EndDate:        dateOnly(i.EndDate),
		ClearEndDate:   i.ClearEndDate,
		Deadline:       dateOnly(i.Deadline),
		ClearDeadline:  i.ClearDeadline,
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

// ListProjectsInput holds filter and pagination parameters.
type ListProjectsInput struct {
	Status       *domain.ProjectStatus
	Kind         *domain.ProjectKind
	PaymentState *domain.PaymentState
	Search       string
	Limit        int
	Offset       int
}

// Validate checks all fields and collects all errors.
func (i ListProjectsInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "invalid value"})
	}
	if i.PaymentState != nil && !i.PaymentState.IsValid() {
		errs = append(errs, domain.FieldError{Field: "payment_state", Message: "invalid value"})
	}
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

// LinkClientInput holds the parameters for linking a client to a project.
type LinkClientInput struct {
	ProjectID uuid.UUID
	ClientID  uuid.UUID
	Note      *string
}

// Validate checks all fields and collects all errors.
func (i LinkClientInput) Validate() error {
	var errs []domain.FieldError
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.Note != nil && len(strings.TrimSpace(*i.Note)) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 1000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// checkProject validates a complete project state: a new project, or the
// stored row with an update applied.
func checkProject(errs []domain.FieldError, p domain.Project) []domain.FieldError {
	if p.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(p.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if p.Description != nil && len(*p.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 10000 characters"})
	}
	if !p.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "invalid value"})
	}
	if !p.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if !p.PaymentState.IsValid() {
		errs = append(errs, domain.FieldError{Field: "payment_state", Message: "invalid value"})
	}
	if p.ProgressPct < domain.MinProgress || p.ProgressPct > domain.MaxProgress {
		errs = append(errs, domain.FieldError{Field: "progress_pct", Message: "must be between 0 and 100"})
	}
	if p.Budget != nil {
		errs = checkAmount(errs, "budget", *p.Budget)
	}
	errs = checkAmount(errs, "paid_amount", p.PaidAmount)
	if p.Budget != nil && validAmount(*p.Budget) && validAmount(p.PaidAmount) && p.PaidAmount > *p.Budget {
		errs = append(errs, domain.FieldError{Field: "paid_amount", Message: "exceeds budget"})
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "before start_date"})
	}
	return errs
}

func validAmount(v float64) bool {
	return v >= 0 && v < domain.MaxAmount
}

func checkAmount(errs []domain.FieldError, field string, v float64) []domain.FieldError {
	switch {
	case v < 0:
		errs = append(errs, domain.FieldError{Field: field, Message: "must be non-negative"})
	case v >= domain.MaxAmount:
		errs = append(errs, domain.FieldError{Field: field, Message: "must be less than 1000000000000"})
	}
	return errs
}

// roundCents rounds an optional amount to the stored precision.
func roundCents(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := domain.RoundCents(*v)
	return &r
}

// dateOnly drops the time of day; the columns are DATE.
func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &day
}
