// Package client implements the client registry repository using PostgreSQL.
// Every statement is scoped to the owning user through postgres.Clients.
package client

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
	scope   = postgres.Clients
	columns = []string{"id", "owner_id", "name", "email", "phone", "company", "notes", "created_at", "updated_at"}
)

// Columns returns the table-qualified column list, for joins from other repos.
func Columns() []string {
	return postgres.Qualify(scope.Table, columns)
}

// Repo provides client persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new client repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Row is the scan target for client rows.
type Row struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Name      string    `db:"name"`
	Email     *string   `db:"email"`
	Phone     *string   `db:"phone"`
	Company   *string   `db:"company"`
	Notes     *string   `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ToDomain converts the row into a domain.Client.
func (r Row) ToDomain() *domain.Client {
	return &domain.Client{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// GetByID returns a client owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Client, error) {
	query, args, err := scope.Select(ownerID, Columns()...).
		Where(sq.Eq{scope.Col("id"): id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}

	var row Row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}
	return row.ToDomain(), nil
}

// List returns the owner's clients, most recently updated first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.ClientFilter) ([]*domain.Client, error) {
	b := scope.Select(ownerID, Columns()...).
		OrderBy(scope.Col("updated_at")+" DESC", scope.Col("id"))

	if filter.Search != "" {
		pattern := postgres.ContainsPattern(filter.Search)
		b = b.Where(sq.Or{
			sq.ILike{scope.Col("name"): pattern},
			sq.ILike{scope.Col("company"): pattern},
			sq.ILike{scope.Col("email"): pattern},
		})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}

	var rows []Row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}

	out := make([]*domain.Client, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out, nil
}

// Create inserts a new client for ownerID.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, c *domain.Client) (*domain.Client, error) {
	query, args, err := postgres.Builder().
		Insert(scope.Table).
		Columns("owner_id", "name", "email", "phone", "company", "notes").
		Values(ownerID, c.Name, c.Email, c.Phone, c.Company, c.Notes).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}

	var row Row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, uuid.Nil)
	}
	return row.ToDomain(), nil
}

// Update applies params to a client owned by ownerID.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, params domain.ClientUpdateParams) (*domain.Client, error) {
	sets := map[string]any{}
	if params.Name != nil {
		sets["name"] = *params.Name
	}
	if params.Email != nil {
		sets["email"] = postgres.NullIfEmpty(*params.Email)
	}
	if params.Phone != nil {
		sets["phone"] = postgres.NullIfEmpty(*params.Phone)
	}
	if params.Company != nil {
		sets["company"] = postgres.NullIfEmpty(*params.Company)
	}
	if params.Notes != nil {
		sets["notes"] = postgres.NullIfEmpty(*params.Notes)
	}

	query, args, err := scope.Update(ownerID, id, sets).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}

	var row Row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, scope.Entity, id)
	}
	return row.ToDomain(), nil
}

// Delete removes a client owned by ownerID. Its project links cascade.
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

// Require checks that the client exists and belongs to ownerID.
func (r *Repo) Require(ctx context.Context, ownerID, id uuid.UUID) error {
	return scope.Require(ctx, postgres.QuerierFromCtx(ctx, r.db), ownerID, id)
}
