package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/pkg/ctxutil"
)

// UpdateClient applies a partial update to one of the caller's clients.
func (s *Service) UpdateClient(ctx context.Context, input UpdateClientInput) (*domain.Client, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Client
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.clients.Update(txCtx, userID, input.ClientID, input.params())
		if updateErr != nil {
			return fmt.Errorf("update client: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "client updated",
		slog.String("user_id", userID.String()),
		slog.String("client_id", input.ClientID.String()),
	)

	return updated, nil
}

// DeleteClient removes one of the caller's clients together with its project links.
func (s *Service) DeleteClient(ctx context.Context, clientID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if clientID == uuid.Nil {
		return domain.NewValidationError("client_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.clients.Delete(txCtx, userID, clientID); err != nil {
			return fmt.Errorf("delete client: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "client deleted",
		slog.String("user_id", userID.String()),
		slog.String("client_id", clientID.String()),
	)

	return nil
}
