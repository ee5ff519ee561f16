package timeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/pkg/ctxutil"
)

// CreateEntry adds a milestone to one of the caller's projects.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.TimelineEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.TimelineEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.projects.Require(txCtx, userID, input.ProjectID); err != nil {
			return fmt.Errorf("check project: %w", err)
		}

		var createErr error
		created, createErr = s.entries.Create(txCtx, &domain.TimelineEntry{
			ProjectID:   input.ProjectID,
			Milestone:   domain.CleanText(input.Milestone),
			Description: domain.OptionalText(input.Description),
			Done:        input.Done,
		}, input.OrderIndex)
		if createErr != nil {
			return fmt.Errorf("create timeline entry: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "timeline entry created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.String("entry_id", created.ID.String()),
	)

	return created, nil
}

// ListEntries returns a project's timeline in display order.
func (s *Service) ListEntries(ctx context.Context, projectID uuid.UUID) ([]*domain.TimelineEntry, error) {
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return []*domain.TimelineEntry{}, nil
	}

	if err := s.projects.Require(ctx, userID, projectID); err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}

	entries, err := s.entries.ListByProject(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list timeline: %w", err)
	}

	return entries, nil
}

// UpdateEntry applies a partial update. Marking an entry done stamps done_at.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.TimelineEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.TimelineEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.entries.Update(txCtx, userID, input.EntryID, input.params())
		if updateErr != nil {
			return fmt.Errorf("update timeline entry: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "timeline entry updated",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", input.EntryID.String()),
	)

	return updated, nil
}

// DeleteEntry removes a timeline entry.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if entryID == uuid.Nil {
		return domain.NewValidationError("entry_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.entries.Delete(txCtx, userID, entryID); err != nil {
			return fmt.Errorf("delete timeline entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "timeline entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)

	return nil
}

// Reorder renumbers a project's timeline to match input.EntryIDs, which
// must name every entry of the project exactly once. Returns the timeline
// in its new order.
func (s *Service) Reorder(ctx context.Context, input ReorderInput) ([]*domain.TimelineEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var entries []*domain.TimelineEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.projects.Require(txCtx, userID, input.ProjectID); err != nil {
			return fmt.Errorf("check project: %w", err)
		}

		current, listErr := s.entries.ListByProject(txCtx, userID, input.ProjectID)
		if listErr != nil {
			return fmt.Errorf("list timeline: %w", listErr)
		}
		if !sameEntries(current, input.EntryIDs) {
			return domain.NewValidationError("entry_ids", "must list every entry of the project exactly once")
		}

		if err := s.entries.Reorder(txCtx, userID, input.ProjectID, input.EntryIDs); err != nil {
			return fmt.Errorf("reorder timeline: %w", err)
		}

		var reloadErr error
		entries, reloadErr = s.entries.ListByProject(txCtx, userID, input.ProjectID)
		if reloadErr != nil {
			return fmt.Errorf("list timeline: %w", reloadErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "timeline reordered",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.Int("entries", len(input.EntryIDs)),
	)

	return entries, nil
}

// sameEntries reports whether ids is a permutation of the stored entries.
// ids is already known to be free of duplicates.
func sameEntries(current []*domain.TimelineEntry, ids []uuid.UUID) bool {
	if len(current) != len(ids) {
		return false
	}
	stored := make(map[uuid.UUID]struct{}, len(current))
	for _, e := range current {
		stored[e.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := stored[id]; !ok {
			return false
		}
	}
	return true
}
