package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/pkg/ctxutil"
)

// CreateProject creates a new project for the authenticated user.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := input.project()
	var created *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.projects.Create(txCtx, userID, &p)
		if createErr != nil {
			return fmt.Errorf("create project: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", created.ID.String()),
		slog.String("kind", created.Kind.String()),
	)

	return created, nil
}
