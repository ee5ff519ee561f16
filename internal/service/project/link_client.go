package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/pkg/ctxutil"
)

// LinkClient links one of the caller's clients to one of the caller's
// projects. A pair can be linked once; linking it again is ErrAlreadyExists.
func (s *Service) LinkClient(ctx context.Context, input LinkClientInput) (*domain.ProjectClient, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var link *domain.ProjectClient
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Both sides must be owned by the caller; the FKs alone only prove existence.
		if err := s.projects.Require(txCtx, userID, input.ProjectID); err != nil {
			return fmt.Errorf("check project: %w", err)
		}
		if err := s.clients.Require(txCtx, userID, input.ClientID); err != nil {
			return fmt.Errorf("check client: %w", err)
		}

		var linkErr error
		link, linkErr = s.links.Link(txCtx, input.ProjectID, input.ClientID, domain.OptionalText(input.Note))
		if linkErr != nil {
			return fmt.Errorf("link client: %w", linkErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "client linked",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.String("client_id", input.ClientID.String()),
	)

	return link, nil
}

// UnlinkClient removes the link between a project and a client.
func (s *Service) UnlinkClient(ctx context.Context, projectID, clientID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := (LinkClientInput{ProjectID: projectID, ClientID: clientID}).Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.links.Unlink(txCtx, userID, projectID, clientID); err != nil {
			return fmt.Errorf("unlink client: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "client unlinked",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
		slog.String("client_id", clientID.String()),
	)

	return nil
}

// ListClients returns the clients linked to one of the caller's projects.
func (s *Service) ListClients(ctx context.Context, projectID uuid.UUID) ([]*domain.LinkedClient, error) {
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return []*domain.LinkedClient{}, nil
	}

	if err := s.projects.Require(ctx, userID, projectID); err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}

	clients, err := s.links.ListClients(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return clients, nil
}
