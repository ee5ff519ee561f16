package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/pkg/ctxutil"
)

// CreateClient creates a new client for the authenticated user.
func (s *Service) CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Client
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.clients.Create(txCtx, userID, &domain.Client{
			Name:    domain.CleanText(input.Name),
			Email:   domain.OptionalText(input.Email),
			Phone:   domain.OptionalText(input.Phone),
			Company: domain.OptionalText(input.Company),
			Notes:   domain.OptionalText(input.Notes),
		})
		if createErr != nil {
			return fmt.Errorf("create client: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "client created",
		slog.String("user_id", userID.String()),
		slog.String("client_id", created.ID.String()),
	)

	return created, nil
}
