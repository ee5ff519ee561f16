package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/pkg/ctxutil"
)

// Progress returns the task-derived progress next to the stored value
// without changing anything.
func (s *Service) Progress(ctx context.Context, projectID uuid.UUID) (domain.ProgressReport, error) {
	if projectID == uuid.Nil {
		return domain.ProgressReport{}, domain.NewValidationError("project_id", "required")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ProgressReport{}, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	p, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return domain.ProgressReport{}, fmt.Errorf("get project: %w", err)
	}

	total, done, err := s.tasks.CountByProject(ctx, userID, projectID)
	if err != nil {
		return domain.ProgressReport{}, fmt.Errorf("count tasks: %w", err)
	}

	return domain.ProgressReport{
		Total:    total,
		Done:     done,
		Computed: domain.ComputeProgress(total, done),
		Stored:   p.ProgressPct,
	}, nil
}

// RecomputeProgress overwrites the stored progress with the task-derived
// value. This is the only path by which tasks affect progress_pct.
func (s *Service) RecomputeProgress(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	var (
		updated  *domain.Project
		previous int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.projects.GetForUpdate(txCtx, userID, projectID)
		if getErr != nil {
			return fmt.Errorf("get project: %w", getErr)
		}
		previous = current.ProgressPct

		total, done, countErr := s.tasks.CountByProject(txCtx, userID, projectID)
		if countErr != nil {
			return fmt.Errorf("count tasks: %w", countErr)
		}

		pct := domain.ComputeProgress(total, done)
		var updateErr error
		updated, updateErr = s.projects.Update(txCtx, userID, projectID, domain.ProjectUpdateParams{ProgressPct: &pct})
		if updateErr != nil {
			return fmt.Errorf("update project: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project progress recomputed",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
		slog.Int("previous", previous),
		slog.Int("progress_pct", updated.ProgressPct),
	)

	return updated, nil
}
