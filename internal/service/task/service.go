package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

type taskRepo interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type projectRepo interface {
	Require(ctx context.Context, ownerID, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides task operations. Tasks never change a project's stored
// progress; see project.Service.RecomputeProgress.
type Service struct {
	tasks    taskRepo
	projects projectRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new task service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	projects projectRepo,
	tx txManager,
) *Service {
	return &Service{
		tasks:    tasks,
		projects: projects,
		tx:       tx,
		log:      log.With("service", "task"),
	}
}
