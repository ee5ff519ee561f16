package project

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

type projectRepo interface {
	Create(ctx context.Context, ownerID uuid.UUID, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Project, error)
	GetForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, ownerID uuid.UUID, filter domain.ProjectFilter) ([]*domain.Project, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Require(ctx context.Context, ownerID, id uuid.UUID) error
}

type taskRepo interface {
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]*domain.Task, error)
	CountByProject(ctx context.Context, ownerID, projectID uuid.UUID) (total, done int, err error)
}

type timelineRepo interface {
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]*domain.TimelineEntry, error)
}

// M2M: project <-> client
type linkRepo interface {
	Link(ctx context.Context, projectID, clientID uuid.UUID, note *string) (*domain.ProjectClient, error)
	Unlink(ctx context.Context, ownerID, projectID, clientID uuid.UUID) error
	ListClients(ctx context.Context, ownerID, projectID uuid.UUID) ([]*domain.LinkedClient, error)
}

type clientRepo interface {
	Require(ctx context.Context, ownerID, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides project registry operations.
type Service struct {
	projects projectRepo
	tasks    taskRepo
	timeline timelineRepo
	links    linkRepo
	clients  clientRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new project service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	tasks taskRepo,
	timeline timelineRepo,
	links linkRepo,
	clients clientRepo,
	tx txManager,
) *Service {
	return &Service{
		projects: projects,
		tasks:    tasks,
		timeline: timeline,
		links:    links,
		clients:  clients,
		tx:       tx,
		log:      log.With("service", "project"),
	}
}
