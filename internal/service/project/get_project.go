package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/pkg/ctxutil"
)

// GetProject returns a project with its tasks, timeline and linked clients.
// The four reads run concurrently. Anonymous callers get ErrNotFound.
func (s *Service) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.ProjectDetail, error) {
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	var (
		p        *domain.Project
		tasks    []*domain.Task
		timeline []*domain.TimelineEntry
		clients  []*domain.LinkedClient
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if p, err = s.projects.GetByID(gctx, userID, projectID); err != nil {
			return fmt.Errorf("get project: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if tasks, err = s.tasks.ListByProject(gctx, userID, projectID); err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if timeline, err = s.timeline.ListByProject(gctx, userID, projectID); err != nil {
			return fmt.Errorf("list timeline: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if clients, err = s.links.ListClients(gctx, userID, projectID); err != nil {
			return fmt.Errorf("list clients: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.ProjectDetail{
		Project:  *p,
		Tasks:    tasks,
		Timeline: timeline,
		Clients:  clients,
	}, nil
}

// ListProjects returns the caller's projects matching the filters, most
// recently updated first.
func (s *Service) ListProjects(ctx context.Context, input ListProjectsInput) ([]*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return []*domain.Project{}, nil
	}

	projects, err := s.projects.List(ctx, userID, domain.ProjectFilter{
		Status:       input.Status,
		Kind:         input.Kind,
		PaymentState: input.PaymentState,
		Search:       domain.CleanText(input.Search),
		Limit:        input.Limit,
		Offset:       input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}
