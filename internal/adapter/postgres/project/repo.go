// Package project implements the project registry repository using PostgreSQL.
// Every statement is scoped to the owning user through postgres.Projects.
package project

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/devdash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/devdash-backend/internal/domain"
)

var (
	scope   = postgres.Projects
	columns = []string{
		"id", "owner_id", "title", "description", "kind", "status", "payment_state",
		"progress_pct", "budget", "paid_amount", "start_date", "end_date", "deadline",
		"created_at", "updated_at",
	}
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type projectRow struct {
	ID           uuid.UUID  `db:"id"`
	OwnerID      uuid.UUID  `db:"owner_id"`
	Title        string     `db:"title"`
	Description  *string    `db:"description"`
	Kind         string     `db:"kind"`
	Status       string     `db:"status"`
	PaymentState string     `db:"payment_state"`
	ProgressPct  int        `db:"progress_pct"`
	Budget       *float64   `db:"budget"`
	PaidAmount   float64    `db:"paid_amount"`
	StartDate    *time.Time `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	Deadline     *time.Time `db:"deadline"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r projectRow) toDomain() *domain.Project {
	return &domain.Project{
		ID:           r.ID,
		OwnerID:      r.OwnerID,
		Title:        r.Title,
		Description:  r.Description,
		Kind:         domain.ProjectKind(r.Kind),
		Status:       domain.ProjectStatus(r.Status),
		PaymentState: domain.PaymentState(r.PaymentState),
		ProgressPct:  r.ProgressPct,
		Budget:       r.Budget,
		PaidAmount:   r.PaidAmount,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Deadline:     r.Deadline,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toDomainList(rows []projectRow) []*domain.Project {
	out := make([]*domain.Project, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}

// GetByID returns a project owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Project, error) {
	return r.get(ctx, ownerID, id, "")
}

// GetForUpdate returns a project owned by ownerID and locks its row until
// the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*domain.Project, error) {
	return r.get(ctx, ownerID, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, ownerID, id uuid.UUID, lock string) (*domain.Project, error) {
	b := scope.Select(ownerID, postgres.Qualify(scope.Table, columns)...).
		Where(sq.Eq{scope.Col("id"): id})
	if lock != "" {
		b = b.Suffix(lock)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}

	var row projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}
	return row.toDomain(), nil
}

// List returns the owner's projects matching filter, most recently updated first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.ProjectFilter) ([]*domain.Project, error) {
	b := applyFilter(scope.Select(ownerID, postgres.Qualify(scope.Table, columns)...), filter).
		OrderBy(scope.Col("updated_at")+" DESC", scope.Col("id"))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}

	var rows []projectRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}
	return toDomainList(rows), nil
}

// ListByClient returns the owner's projects linked to clientID.
func (r *Repo) ListByClient(ctx context.Context, ownerID, clientID uuid.UUID) ([]*domain.Project, error) {
	query, args, err := scope.Select(ownerID, postgres.Qualify(scope.Table, columns)...).
		Join("project_clients pc ON pc.project_id = projects.id").
		Where(sq.Eq{"pc.client_id": clientID}).
		OrderBy(scope.Col("updated_at")+" DESC", scope.Col("id")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}

	var rows []projectRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}
	return toDomainList(rows), nil
}

func applyFilter(b sq.SelectBuilder, f domain.ProjectFilter) sq.SelectBuilder {
	if f.Status != nil {
		b = b.Where(sq.Eq{scope.Col("status"): string(*f.Status)})
	}
	if f.Kind != nil {
		b = b.Where(sq.Eq{scope.Col("kind"): string(*f.Kind)})
	}
	if f.PaymentState != nil {
		b = b.Where(sq.Eq{scope.Col("payment_state"): string(*f.PaymentState)})
	}
	if f.Search != "" {
		b = b.Where(sq.ILike{scope.Col("title"): postgres.ContainsPattern(f.Search)})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}
	return b
}

// Create inserts a new project for ownerID.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, p *domain.Project) (*domain.Project, error) {
	query, args, err := postgres.Builder().
		Insert(scope.Table).
		Columns(
			"owner_id", "title", "description", "kind", "status", "payment_state",
			"progress_pct", "budget", "paid_amount", "start_date", "end_date", "deadline",
		).
		Values(
			ownerID, p.Title, p.Description, string(p.Kind), string(p.Status), string(p.PaymentState),
			p.ProgressPct, p.Budget, p.PaidAmount, p.StartDate, p.EndDate, p.Deadline,
		).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}

	var row projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}
	return row.toDomain(), nil
}

// Update applies params to a project owned by ownerID.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
	query, args, err := scope.Update(ownerID, id, updateSets(params)).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}

	var row projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}
	return row.toDomain(), nil
}

func updateSets(p domain.ProjectUpdateParams) map[string]any {
	sets := map[string]any{}
	if p.Title != nil {
		sets["title"] = *p.Title
	}
	if p.Description != nil {
		sets["description"] = postgres.NullIfEmpty(*p.Description)
	}
	if p.Kind != nil {
		sets["kind"] = string(*p.Kind)
	}
	if p.Status != nil {
		sets["status"] = string(*p.Status)
	}
	if p.PaymentState != nil {
		sets["payment_state"] = string(*p.PaymentState)
	}
	if p.ProgressPct != nil {
		sets["progress_pct"] = *p.ProgressPct
	}
	switch {
	case p.ClearBudget:
		sets["budget"] = nil
	case p.Budget != nil:
		sets["budget"] = *p.Budget
	}
	if p.PaidAmount != nil {
		sets["paid_amount"] = *p.PaidAmount
	}
	setDate(sets, "start_date", p.StartDate, p.ClearStartDate)
	setDate(sets, "end_date", p.EndDate, p.ClearEndDate)
	setDate(sets, "deadline", p.Deadline, p.ClearDeadline)
	return sets
}

func setDate(sets map[string]any, column string, v *time.Time, clear bool) {
	switch {
	case clear:
		sets[column] = nil
	case v != nil:
		sets[column] = *v
	}
}

// Delete removes a project owned by ownerID. Tasks, timeline entries and
// client links cascade in the same statement.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query, args, err := scope.Delete(ownerID).
		Where(sq.Eq{scope.Col("id"): id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, scope.Entity, id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, scope.Entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, scope.Entity, id)
	}
	return nil
}

// Require checks that the project exists and belongs to ownerID.
func (r *Repo) Require(ctx context.Context, ownerID, id uuid.UUID) error {
	return scope.Require(ctx, postgres.QuerierFromCtx(ctx, r.db), ownerID, id)
}
