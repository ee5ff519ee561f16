// Package stats serves the per-user dashboard aggregates.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/pkg/ctxutil"
)

type statsRepo interface {
	Dashboard(ctx context.Context, ownerID uuid.UUID, today time.Time) (domain.DashboardStats, error)
}

// Service computes dashboard statistics on demand.
type Service struct {
	stats statsRepo
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new stats service.
func NewService(log *slog.Logger, stats statsRepo) *Service {
	return &Service{
		stats: stats,
		log:   log.With("service", "stats"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Dashboard returns the caller's aggregates. Anonymous callers and callers
// without projects get all zeros.
func (s *Service) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.DashboardStats{}, nil
	}

	st, err := s.stats.Dashboard(ctx, userID, s.now())
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("stats.Dashboard: %w", err)
	}

	return st, nil
}
