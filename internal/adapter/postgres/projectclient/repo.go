// Package projectclient implements the project <-> client link repository.
// Links are owned through their project (postgres.ProjectClients).
package projectclient

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/devdash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/devdash-backend/internal/adapter/postgres/client"
	"github.com/heartmarshall/devdash-backend/internal/domain"
)

var (
	scope   = postgres.ProjectClients
	columns = []string{"id", "project_id", "client_id", "note", "created_at"}
)

// Repo provides project-client link persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new link repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type linkRow struct {
	ID        uuid.UUID `db:"id"`
	ProjectID uuid.UUID `db:"project_id"`
	ClientID  uuid.UUID `db:"client_id"`
	Note      *string   `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

type linkedClientRow struct {
	client.Row
	LinkID   uuid.UUID `db:"link_id"`
	LinkNote *string   `db:"link_note"`
	LinkedAt time.Time `db:"linked_at"`
}

// Link inserts a link. The caller checks that both ends belong to the owner.
// A duplicate pair is reported as domain.ErrAlreadyExists.
func (r *Repo) Link(ctx context.Context, projectID, clientID uuid.UUID, note *string) (*domain.ProjectClient, error) {
	query, args, err := postgres.Builder().
		Insert(scope.Table).
		Columns("project_id", "client_id", "note").
		Values(projectID, clientID, note).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, clientID)
	}

	var row linkRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, clientID)
	}
	return &domain.ProjectClient{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		ClientID:  row.ClientID,
		Note:      row.Note,
		CreatedAt: row.CreatedAt,
	}, nil
}

// Unlink removes the link between projectID and clientID if the project
// belongs to ownerID.
func (r *Repo) Unlink(ctx context.Context, ownerID, projectID, clientID uuid.UUID) error {
	query, args, err := scope.Delete(ownerID).
		Where(sq.Eq{
			scope.Col("project_id"): projectID,
			scope.Col("client_id"):  clientID,
		}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, scope.Entity, clientID)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, scope.Entity, clientID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, scope.Entity, clientID)
	}
	return nil
}

// ListClients returns the clients linked to projectID, oldest link first.
func (r *Repo) ListClients(ctx context.Context, ownerID, projectID uuid.UUID) ([]*domain.LinkedClient, error) {
	cols := append(client.Columns(),
		scope.Col("id")+" AS link_id",
		scope.Col("note")+" AS link_note",
		scope.Col("created_at")+" AS linked_at",
	)

	query, args, err := scope.Select(ownerID, cols...).
		Join("clients ON clients.id = " + scope.Col("client_id")).
		Where(sq.Eq{scope.Col("project_id"): projectID}).
		OrderBy(scope.Col("created_at"), scope.Col("id")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, projectID)
	}

	var rows []linkedClientRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, projectID)
	}

	out := make([]*domain.LinkedClient, len(rows))
	for i, row := range rows {
		out[i] = &domain.LinkedClient{
			Client:   *row.Row.ToDomain(),
			LinkID:   row.LinkID,
			LinkNote: row.LinkNote,
			LinkedAt: row.LinkedAt,
		}
	}
	return out, nil
}
