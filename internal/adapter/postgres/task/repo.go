// Package task implements the task list repository using PostgreSQL.
// Tasks are owned through their project (postgres.Tasks).
package task

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
	scope   = postgres.Tasks
	columns = []string{"id", "project_id", "title", "description", "done", "priority", "due_date", "created_at", "updated_at"}
)

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type taskRow struct {
	ID          uuid.UUID  `db:"id"`
	ProjectID   uuid.UUID  `db:"project_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Done        bool       `db:"done"`
	Priority    int        `db:"priority"`
	DueDate     *time.Time `db:"due_date"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r taskRow) toDomain() *domain.Task {
	return &domain.Task{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		Done:        r.Done,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// GetByID returns a task whose project belongs to ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	query, args, err := scope.Select(ownerID, postgres.Qualify(scope.Table, columns)...).
		Where(sq.Eq{scope.Col("id"): id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}
	return row.toDomain(), nil
}

// ListByProject returns the project's tasks: open before done, then by
// priority (highest first), then oldest first.
func (r *Repo) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]*domain.Task, error) {
	query, args, err := scope.Select(ownerID, postgres.Qualify(scope.Table, columns)...).
		Where(sq.Eq{scope.Col("project_id"): projectID}).
		OrderBy(scope.Col("done")+" ASC", scope.Col("priority")+" DESC", scope.Col("created_at")+" ASC", scope.Col("id")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, projectID)
	}

	var rows []taskRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, projectID)
	}

	out := make([]*domain.Task, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Create inserts a task. The caller checks project ownership first.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	query, args, err := postgres.Builder().
		Insert(scope.Table).
		Columns("project_id", "title", "description", "done", "priority", "due_date").
		Values(t.ProjectID, t.Title, t.Description, t.Done, t.Priority, t.DueDate).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}
	return row.toDomain(), nil
}

// Update applies params to a task whose project belongs to ownerID.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error) {
	sets := map[string]any{}
	if params.Title != nil {
		sets["title"] = *params.Title
	}
	if params.Description != nil {
		sets["description"] = postgres.NullIfEmpty(*params.Description)
	}
	if params.Done != nil {
		sets["done"] = *params.Done
	}
	if params.Priority != nil {
		sets["priority"] = *params.Priority
	}
	switch {
	case params.ClearDueDate:
		sets["due_date"] = nil
	case params.DueDate != nil:
		sets["due_date"] = *params.DueDate
	}

	query, args, err := scope.Update(ownerID, id, sets).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}
	return row.toDomain(), nil
}

// Delete removes a task whose project belongs to ownerID.
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

// CountByProject returns how many tasks the project has and how many are done.
func (r *Repo) CountByProject(ctx context.Context, ownerID, projectID uuid.UUID) (total, done int, err error) {
	query, args, err := scope.Select(ownerID, "count(*)", "count(*) FILTER (WHERE "+scope.Col("done")+")").
		Where(sq.Eq{scope.Col("project_id"): projectID}).
		ToSql()
	if err != nil {
		return 0, 0, postgres.MapError(err, scope.Entity, projectID)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&total, &done); err != nil {
		return 0, 0, postgres.MapError(err, scope.Entity, projectID)
	}
	return total, done, nil
}
