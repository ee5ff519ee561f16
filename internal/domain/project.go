package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	MinProgress = 0
	MaxProgress = 100
)

// MaxAmount is the exclusive upper bound of the NUMERIC(14,2) money columns.
const MaxAmount = 1e12

// RoundCents rounds a money amount to whole cents, half away from zero,
// the way the money columns store it.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Project is a work item owned by a user.
type Project struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  *string
	Kind         ProjectKind
	Status       ProjectStatus
	PaymentState PaymentState
	ProgressPct  int
	Budget       *float64
	PaidAmount   float64
	StartDate    *time.Time
	EndDate      *time.Time
	Deadline     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOverdue reports whether the deadline has passed while work is still open.
func (p *Project) IsOverdue(today time.Time) bool {
	if p.Deadline == nil || p.Status.IsClosed() {
		return false
	}
	return p.Deadline.Before(truncateDay(today))
}

// ProjectUpdateParams holds the fields to change. nil = don't change.
// ClearBudget, ClearStartDate, ClearEndDate and ClearDeadline set the column to NULL.
type ProjectUpdateParams struct {
	Title          *string
	Description    *string
	Kind           *ProjectKind
	Status         *ProjectStatus
	PaymentState   *PaymentState
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

// Apply returns a copy of p with params applied. Used to validate the merged
// state of a partial update before it is written.
func (params ProjectUpdateParams) Apply(p Project) Project {
	if params.Title != nil {
		p.Title = *params.Title
	}
	if params.Description != nil {
		p.Description = emptyToNil(*params.Description)
	}
	if params.Kind != nil {
		p.Kind = *params.Kind
	}
	if params.Status != nil {
		p.Status = *params.Status
	}
	if params.PaymentState != nil {
		p.PaymentState = *params.PaymentState
	}
	if params.ProgressPct != nil {
		p.ProgressPct = *params.ProgressPct
	}
	switch {
	case params.ClearBudget:
		p.Budget = nil
	case params.Budget != nil:
		p.Budget = params.Budget
	}
	if params.PaidAmount != nil {
		p.PaidAmount = *params.PaidAmount
	}
	p.StartDate = applyDate(p.StartDate, params.StartDate, params.ClearStartDate)
	p.EndDate = applyDate(p.EndDate, params.EndDate, params.ClearEndDate)
	p.Deadline = applyDate(p.Deadline, params.Deadline, params.ClearDeadline)
	return p
}

// ProjectDetail is a project with its children, as shown on the project page.
type ProjectDetail struct {
	Project
	Tasks    []*Task
	Timeline []*TimelineEntry
	Clients  []*LinkedClient
}

func applyDate(cur, next *time.Time, clear bool) *time.Time {
	if clear {
		return nil
	}
	if next != nil {
		return next
	}
	return cur
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
