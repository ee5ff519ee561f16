package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

// Provision makes sure an identity record exists for an authenticated
// principal. It runs after every successful token verification. The first
// call creates the record with a derived display name; later calls are
// no-ops. Fails with ErrAlreadyExists when the email belongs to another
// identity.
func (s *Service) Provision(ctx context.Context, p domain.Principal) error {
	if p.ID == uuid.Nil || domain.NormalizeEmail(p.Email) == "" {
		return domain.ErrUnauthorized
	}
	if s.provisioned.Contains(p.ID) {
		return nil
	}

	u := domain.NewUserFromPrincipal(p, s.now())
	created, err := s.users.InsertIfAbsent(ctx, u)
	if err != nil {
		return fmt.Errorf("user.Provision: %w", err)
	}

	if !created {
		// Either the id already exists or the email is taken by someone else.
		if _, err := s.users.GetByID(ctx, p.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("user.Provision: email %s: %w", u.Email, domain.ErrAlreadyExists)
			}
			return fmt.Errorf("user.Provision: %w", err)
		}
	} else {
		s.log.InfoContext(ctx, "user provisioned",
			slog.String("user_id", p.ID.String()),
			slog.String("email", u.Email),
		)
	}

	s.provisioned.Add(p.ID, struct{}{})
	return nil
}
