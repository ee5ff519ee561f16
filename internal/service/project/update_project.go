package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/pkg/ctxutil"
)

// UpdateProject applies a partial update, including a manual progress value.
// The merged result must still be a valid project: paid_amount may not
// exceed a set budget and end_date may not precede start_date.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := input.params()
	var updated *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.projects.GetForUpdate(txCtx, userID, input.ProjectID)
		if getErr != nil {
			return fmt.Errorf("get project: %w", getErr)
		}

		if errs := checkProject(nil, params.Apply(*current)); len(errs) > 0 {
			return &domain.ValidationError{Errors: errs}
		}

		var updateErr error
		updated, updateErr = s.projects.Update(txCtx, userID, input.ProjectID, params)
		if updateErr != nil {
			return fmt.Errorf("update project: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project updated",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
	)

	return updated, nil
}

// DeleteProject removes a project with its tasks, timeline and client links.
func (s *Service) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if projectID == uuid.Nil {
		return domain.NewValidationError("project_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.projects.Delete(txCtx, userID, projectID); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
	)

	return nil
}
