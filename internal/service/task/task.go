package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/pkg/ctxutil"
)

// CreateTask adds a task to one of the caller's projects.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Task
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.projects.Require(txCtx, userID, input.ProjectID); err != nil {
			return fmt.Errorf("check project: %w", err)
		}

		var createErr error
		created, createErr = s.tasks.Create(txCtx, input.task())
		if createErr != nil {
			return fmt.Errorf("create task: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.String("task_id", created.ID.String()),
	)

	return created, nil
}

// ListTasks returns the tasks of one of the caller's projects: open tasks
// first, higher priority first.
func (s *Service) ListTasks(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return []*domain.Task{}, nil
	}

	if err := s.projects.Require(ctx, userID, projectID); err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}

	tasks, err := s.tasks.ListByProject(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies a partial update to a task.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Task
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.tasks.Update(txCtx, userID, input.TaskID, input.params())
		if updateErr != nil {
			return fmt.Errorf("update task: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "task updated",
		slog.String("user_id", userID.String()),
		slog.String("task_id", input.TaskID.String()),
	)

	return updated, nil
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if taskID == uuid.Nil {
		return domain.NewValidationError("task_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tasks.Delete(txCtx, userID, taskID); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", userID.String()),
		slog.String("task_id", taskID.String()),
	)

	return nil
}
