// Package timeline implements the project timeline repository using PostgreSQL.
// Entries are owned through their project (postgres.Timeline).
package timeline

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
	scope   = postgres.Timeline
	columns = []string{"id", "project_id", "milestone", "description", "done", "done_at", "order_index", "created_at"}
)

// Repo provides timeline persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new timeline repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	ID          uuid.UUID  `db:"id"`
	ProjectID   uuid.UUID  `db:"project_id"`
	Milestone   string     `db:"milestone"`
	Description *string    `db:"description"`
	Done        bool       `db:"done"`
	DoneAt      *time.Time `db:"done_at"`
	OrderIndex  int        `db:"order_index"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r entryRow) toDomain() *domain.TimelineEntry {
	return &domain.TimelineEntry{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Milestone:   r.Milestone,
		Description: r.Description,
		Done:        r.Done,
		DoneAt:      r.DoneAt,
		OrderIndex:  r.OrderIndex,
		CreatedAt:   r.CreatedAt,
	}
}

// GetByID returns an entry whose project belongs to ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.TimelineEntry, error) {
	query, args, err := scope.Select(ownerID, postgres.Qualify(scope.Table, columns)...).
		Where(sq.Eq{scope.Col("id"): id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}
	return row.toDomain(), nil
}

// ListByProject returns the project's timeline in display order.
func (r *Repo) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]*domain.TimelineEntry, error) {
	query, args, err := scope.Select(ownerID, postgres.Qualify(scope.Table, columns)...).
		Where(sq.Eq{scope.Col("project_id"): projectID}).
		OrderBy(scope.Col("order_index"), scope.Col("created_at"), scope.Col("id")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, projectID)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, projectID)
	}

	out := make([]*domain.TimelineEntry, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Create inserts an entry. A nil orderIndex appends it after the project's
// last entry. The caller checks project ownership first.
func (r *Repo) Create(ctx context.Context, e *domain.TimelineEntry, orderIndex *int) (*domain.TimelineEntry, error) {
	var order any = sq.Expr(
		"(SELECT COALESCE(max(order_index) + 1, 0) FROM timeline_entries WHERE project_id = ?)", e.ProjectID,
	)
	if orderIndex != nil {
		order = *orderIndex
	}
	var doneAt any
	if e.Done {
		doneAt = sq.Expr("now()")
	}

	query, args, err := postgres.Builder().
		Insert(scope.Table).
		Columns("project_id", "milestone", "description", "done", "done_at", "order_index").
		Values(e.ProjectID, e.Milestone, e.Description, e.Done, doneAt, order).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}
	return row.toDomain(), nil
}

// Update applies params to an entry whose project belongs to ownerID.
// Setting done stamps done_at with the mutation time; clearing it removes the stamp.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, params domain.TimelineUpdateParams) (*domain.TimelineEntry, error) {
	sets := map[string]any{}
	if params.Milestone != nil {
		sets["milestone"] = *params.Milestone
	}
	if params.Description != nil {
		sets["description"] = postgres.NullIfEmpty(*params.Description)
	}
	if params.Done != nil {
		sets["done"] = *params.Done
		if *params.Done {
			sets["done_at"] = sq.Expr("COALESCE(done_at, now())")
		} else {
			sets["done_at"] = nil
		}
	}
	if params.OrderIndex != nil {
		sets["order_index"] = *params.OrderIndex
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, ownerID, id)
	}

	query, args, err := scope.Update(ownerID, id, sets).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}
	return row.toDomain(), nil
}

// Delete removes an entry whose project belongs to ownerID.
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

// Reorder sets order_index of each entry to its position in ids.
// Every id must belong to projectID; run it inside a transaction.
func (r *Repo) Reorder(ctx context.Context, ownerID, projectID uuid.UUID, ids []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)
	for i, id := range ids {
		query, args, err := scope.Update(ownerID, id, map[string]any{"order_index": i}).
			Where(sq.Eq{scope.Col("project_id"): projectID}).
			ToSql()
		if err != nil {
			return postgres.MapError(err, scope.Entity, id)
		}

		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return postgres.MapError(err, scope.Entity, id)
		}
		if tag.RowsAffected() == 0 {
			return postgres.MapError(domain.ErrNotFound, scope.Entity, id)
		}
	}
	return nil
}
