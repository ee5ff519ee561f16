package client

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

type clientRepo interface {
	Create(ctx context.Context, ownerID uuid.UUID, c *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, ownerID uuid.UUID, filter domain.ClientFilter) ([]*domain.Client, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params domain.ClientUpdateParams) (*domain.Client, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type projectRepo interface {
	ListByClient(ctx context.Context, ownerID, clientID uuid.UUID) ([]*domain.Project, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides client registry operations.
type Service struct {
	clients  clientRepo
	projects projectRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new client service.
func NewService(
	log *slog.Logger,
	clients clientRepo,
	projects projectRepo,
	tx txManager,
) *Service {
	return &Service{
		clients:  clients,
		projects: projects,
		tx:       tx,
		log:      log.With("service", "client"),
	}
}
