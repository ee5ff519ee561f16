package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/pkg/ctxutil"
)

// GetClient returns a single client. Anonymous callers see nothing.
func (s *Service) GetClient(ctx context.Context, clientID uuid.UUID) (*domain.Client, error) {
	if clientID == uuid.Nil {
		return nil, domain.NewValidationError("client_id", "required")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("client %s: %w", clientID, domain.ErrNotFound)
	}

	c, err := s.clients.GetByID(ctx, userID, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	return c, nil
}

// ListClients returns the caller's clients, most recently updated first.
func (s *Service) ListClients(ctx context.Context, input ListClientsInput) ([]*domain.Client, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return []*domain.Client{}, nil
	}

	clients, err := s.clients.List(ctx, userID, domain.ClientFilter{
		Search: domain.CleanText(input.Search),
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return clients, nil
}

// ListProjects returns the caller's projects linked to clientID.
// An unknown or foreign client yields ErrNotFound rather than an empty list.
func (s *Service) ListProjects(ctx context.Context, clientID uuid.UUID) ([]*domain.Project, error) {
	if clientID == uuid.Nil {
		return nil, domain.NewValidationError("client_id", "required")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return []*domain.Project{}, nil
	}

	if _, err := s.clients.GetByID(ctx, userID, clientID); err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	projects, err := s.projects.ListByClient(ctx, userID, clientID)
	if err != nil {
		return nil, fmt.Errorf("list client projects: %w", err)
	}

	return projects, nil
}
