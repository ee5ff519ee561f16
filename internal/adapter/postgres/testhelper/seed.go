package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	name := "Test User " + suffix
	user := domain.User{
		ID:          uuid.New(),
		Email:       "testuser-" + suffix + "@example.com",
		DisplayName: &name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, display_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.DisplayName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedClient creates a client owned by ownerID.
func SeedClient(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Client {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	company := "Acme " + suffix
	client := domain.Client{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      "Client " + suffix,
		Company:   &company,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO clients (id, owner_id, name, company, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		client.ID, client.OwnerID, client.Name, client.Company, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClient: %v", err)
	}

	return client
}

// SeedProject creates a pending client project owned by ownerID.
func SeedProject(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Project {
	t.Helper()
	return SeedProjectWith(t, pool, domain.Project{OwnerID: ownerID})
}

// SeedProjectWith creates a project from p, filling unset fields with defaults.
func SeedProjectWith(t *testing.T, pool *pgxpool.Pool, p domain.Project) domain.Project {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Title == "" {
		p.Title = "Project " + uniqueSuffix()
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
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO projects (id, owner_id, title, kind, status, payment_state, progress_pct,
		                       budget, paid_amount, deadline, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.OwnerID, p.Title, string(p.Kind), string(p.Status), string(p.PaymentState), p.ProgressPct,
		p.Budget, p.PaidAmount, p.Deadline, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}

	return p
}

// SeedTask creates a task in projectID.
func SeedTask(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, done bool) domain.Task {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:        uuid.New(),
		ProjectID: projectID,
		Title:     "Task " + uniqueSuffix(),
		Done:      done,
		Priority:  domain.DefaultTaskPriority,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tasks (id, project_id, title, done, priority, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		task.ID, task.ProjectID, task.Title, task.Done, task.Priority, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}

	return task
}

// SeedTimelineEntry creates a timeline entry in projectID at orderIndex.
func SeedTimelineEntry(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, orderIndex int) domain.TimelineEntry {
	t.Helper()
	ctx := context.Background()

	entry := domain.TimelineEntry{
		ID:         uuid.New(),
		ProjectID:  projectID,
		Milestone:  "Milestone " + uniqueSuffix(),
		OrderIndex: orderIndex,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO timeline_entries (id, project_id, milestone, order_index, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.ProjectID, entry.Milestone, entry.OrderIndex, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTimelineEntry: %v", err)
	}

	return entry
}

// SeedLink links clientID to projectID.
func SeedLink(t *testing.T, pool *pgxpool.Pool, projectID, clientID uuid.UUID) domain.ProjectClient {
	t.Helper()
	ctx := context.Background()

	link := domain.ProjectClient{
		ID:        uuid.New(),
		ProjectID: projectID,
		ClientID:  clientID,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO project_clients (id, project_id, client_id, created_at) VALUES ($1, $2, $3, $4)`,
		link.ID, link.ProjectID, link.ClientID, link.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLink: %v", err)
	}

	return link
}
