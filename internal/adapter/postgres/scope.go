package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// Ownership maps a table to the path that leads to its owning user.
// Direct tables carry owner_id themselves; child tables reach it through
// their parent project.
type Ownership struct {
	Table  string
	Entity string
	// ParentColumn is the column referencing projects.id. Empty for tables
	// that carry owner_id directly.
	ParentColumn string
	// Touch marks tables whose updated_at is maintained by BeforeUpdate.
	Touch bool
}

var (
	Clients        = Ownership{Table: "clients", Entity: "client", Touch: true}
	Projects       = Ownership{Table: "projects", Entity: "project", Touch: true}
	Tasks          = Ownership{Table: "tasks", Entity: "task", ParentColumn: "project_id", Touch: true}
	Timeline       = Ownership{Table: "timeline_entries", Entity: "timeline_entry", ParentColumn: "project_id"}
	ProjectClients = Ownership{Table: "project_clients", Entity: "project_client", ParentColumn: "project_id"}
)

// Col returns the table-qualified column name.
func (o Ownership) Col(name string) string {
	return o.Table + "." + name
}

// Predicate restricts rows of the table to those owned by ownerID.
func (o Ownership) Predicate(ownerID uuid.UUID) sq.Sqlizer {
	if o.ParentColumn == "" {
		return sq.Eq{o.Col("owner_id"): ownerID}
	}
	return sq.Expr(
		"EXISTS (SELECT 1 FROM projects p WHERE p.id = "+o.Col(o.ParentColumn)+" AND p.owner_id = ?)",
		ownerID,
	)
}

// Select starts an owner-scoped SELECT.
func (o Ownership) Select(ownerID uuid.UUID, columns ...string) sq.SelectBuilder {
	return Builder().Select(columns...).From(o.Table).Where(o.Predicate(ownerID))
}

// Update starts an owner-scoped UPDATE of one row. sets passes through
// BeforeUpdate first when the table is touched.
func (o Ownership) Update(ownerID, id uuid.UUID, sets map[string]any) sq.UpdateBuilder {
	if o.Touch {
		sets = BeforeUpdate(sets)
	}
	return Builder().Update(o.Table).
		SetMap(sets).
		Where(sq.Eq{o.Col("id"): id}).
		Where(o.Predicate(ownerID))
}

// Delete starts an owner-scoped DELETE.
func (o Ownership) Delete(ownerID uuid.UUID) sq.DeleteBuilder {
	return Builder().Delete(o.Table).Where(o.Predicate(ownerID))
}

// Require checks that row id exists and is owned by ownerID, locking it
// against concurrent deletion until the surrounding transaction ends.
// Returns domain.ErrNotFound otherwise.
func (o Ownership) Require(ctx context.Context, q Querier, ownerID, id uuid.UUID) error {
	query, args, err := o.Select(ownerID, "1").
		Where(sq.Eq{o.Col("id"): id}).
		Suffix("FOR SHARE").
		ToSql()
	if err != nil {
		return mapError(err, o.Entity, id)
	}

	var one int
	if err := q.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		return mapError(err, o.Entity, id)
	}
	return nil
}

// BeforeUpdate is the pre-update hook for touched tables. It drops any
// caller-supplied updated_at and sets it to the transaction time, never
// moving it backwards.
func BeforeUpdate(sets map[string]any) map[string]any {
	out := make(map[string]any, len(sets)+1)
	for k, v := range sets {
		if k == "updated_at" {
			continue
		}
		out[k] = v
	}
	out["updated_at"] = sq.Expr("GREATEST(now(), updated_at)")
	return out
}
