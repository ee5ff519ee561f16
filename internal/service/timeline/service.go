package timeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

type timelineRepo interface {
	Create(ctx context.Context, e *domain.TimelineEntry, orderIndex *int) (*domain.TimelineEntry, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]*domain.TimelineEntry, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params domain.TimelineUpdateParams) (*domain.TimelineEntry, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Reorder(ctx context.Context, ownerID, projectID uuid.UUID, ids []uuid.UUID) error
}

type projectRepo interface {
	Require(ctx context.Context, ownerID, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides project timeline operations.
type Service struct {
	entries  timelineRepo
	projects projectRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new timeline service.
func NewService(
	log *slog.Logger,
	entries timelineRepo,
	projects projectRepo,
	tx txManager,
) *Service {
	return &Service{
		entries:  entries,
		projects: projects,
		tx:       tx,
		log:      log.With("service", "timeline"),
	}
}
