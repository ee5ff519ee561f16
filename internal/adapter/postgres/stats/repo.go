// Package stats computes per-owner dashboard aggregates in PostgreSQL.
package stats

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/devdash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/devdash-backend/internal/domain"
)

const entity = "stats"

// Repo provides aggregate queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type dashboardRow struct {
	Total       int     `db:"total"`
	Pending     int     `db:"pending"`
	Active      int     `db:"active"`
	Completed   int     `db:"completed"`
	Delivered   int     `db:"delivered"`
	Overdue     int     `db:"overdue"`
	Clients     int     `db:"clients"`
	BudgetSum   float64 `db:"budget_sum"`
	RevenueSum  float64 `db:"revenue_sum"`
	AvgProgress float64 `db:"avg_progress"`
}

// Dashboard aggregates the owner's projects in one query. today is the
// reference day for overdue detection. An owner with no projects gets zeros.
func (r *Repo) Dashboard(ctx context.Context, ownerID uuid.UUID, today time.Time) (domain.DashboardStats, error) {
	query, args, err := postgres.Projects.Select(ownerID,
		"count(*) AS total",
		"count(*) FILTER (WHERE projects.status = 'pending') AS pending",
		"count(*) FILTER (WHERE projects.status = 'in_progress') AS active",
		"count(*) FILTER (WHERE projects.status = 'completed') AS completed",
		"count(*) FILTER (WHERE projects.status = 'delivered') AS delivered",
		"COALESCE(sum(projects.budget), 0)::float8 AS budget_sum",
		"COALESCE(sum(projects.paid_amount), 0)::float8 AS revenue_sum",
		"COALESCE(avg(projects.progress_pct), 0)::float8 AS avg_progress",
	).
		Column(sq.Expr(
			"count(*) FILTER (WHERE projects.deadline < ?::date AND projects.status NOT IN ('completed', 'delivered')) AS overdue",
			today.UTC().Format(time.DateOnly),
		)).
		Column(sq.Expr("(SELECT count(*) FROM clients c WHERE c.owner_id = ?) AS clients", ownerID)).
		ToSql()
	if err != nil {
		return domain.DashboardStats{}, postgres.MapError(err, entity, ownerID)
	}

	var row dashboardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.DashboardStats{}, postgres.MapError(err, entity, ownerID)
	}

	return domain.DashboardStats{
		Total:       row.Total,
		Pending:     row.Pending,
		Active:      row.Active,
		Completed:   row.Completed,
		Delivered:   row.Delivered,
		Overdue:     row.Overdue,
		Clients:     row.Clients,
		BudgetSum:   row.BudgetSum,
		RevenueSum:  row.RevenueSum,
		AvgProgress: row.AvgProgress,
	}, nil
}
