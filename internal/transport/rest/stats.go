package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

type statsService interface {
	Dashboard(ctx context.Context) (domain.DashboardStats, error)
}

// StatsHandler serves GET /api/stats.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

// Dashboard returns the caller's aggregates. Anonymous callers get zeros.
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Dashboard(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		Total:       s.Total,
		Pending:     s.Pending,
		Active:      s.Active,
		Completed:   s.Completed,
		Delivered:   s.Delivered,
		Overdue:     s.Overdue,
		Clients:     s.Clients,
		BudgetSum:   s.BudgetSum,
		RevenueSum:  s.RevenueSum,
		AvgProgress: s.AvgProgress,
	})
}
