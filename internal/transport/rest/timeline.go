package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/internal/service/timeline"
)

type timelineService interface {
	CreateEntry(ctx context.Context, input timeline.CreateEntryInput) (*domain.TimelineEntry, error)
	ListEntries(ctx context.Context, projectID uuid.UUID) ([]*domain.TimelineEntry, error)
	UpdateEntry(ctx context.Context, input timeline.UpdateEntryInput) (*domain.TimelineEntry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
	Reorder(ctx context.Context, input timeline.ReorderInput) ([]*domain.TimelineEntry, error)
}

// TimelineHandler serves project timeline entries.
type TimelineHandler struct {
	svc timelineService
	log *slog.Logger
}

// NewTimelineHandler creates a TimelineHandler.
func NewTimelineHandler(svc timelineService, logger *slog.Logger) *TimelineHandler {
	return &TimelineHandler{svc: svc, log: logger.With("handler", "timeline")}
}

type createEntryRequest struct {
	Milestone   string  `json:"milestone"`
	Description *string `json:"description"`
	Done        bool    `json:"done"`
	OrderIndex  *int    `json:"orderIndex"`
}

type updateEntryRequest struct {
	Milestone   optional[string] `json:"milestone"`
	Description optional[string] `json:"description"`
	Done        optional[bool]   `json:"done"`
	OrderIndex  optional[int]    `json:"orderIndex"`
}

type reorderRequest struct {
	EntryIDs []uuid.UUID `json:"entryIds"`
}

// List handles GET /api/projects/{id}/timeline.
func (h *TimelineHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), projectID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTimelineResponses(entries))
}

// Create handles POST /api/projects/{id}/timeline. Without orderIndex the
// entry is appended.
func (h *TimelineHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req createEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.CreateEntry(r.Context(), timeline.CreateEntryInput{
		ProjectID:   projectID,
		Milestone:   req.Milestone,
		Description: req.Description,
		Done:        req.Done,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTimelineResponse(e))
}

// Reorder handles PUT /api/projects/{id}/timeline/order. The body must list
// every entry of the project exactly once.
func (h *TimelineHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entries, err := h.svc.Reorder(r.Context(), timeline.ReorderInput{
		ProjectID: projectID,
		EntryIDs:  req.EntryIDs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTimelineResponses(entries))
}

// Update handles PATCH /api/timeline/{id}.
func (h *TimelineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.UpdateEntry(r.Context(), timeline.UpdateEntryInput{
		EntryID:     id,
		Milestone:   req.Milestone.ptr(),
		Description: clearable(req.Description),
		Done:        req.Done.ptr(),
		OrderIndex:  req.OrderIndex.ptr(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTimelineResponse(e))
}

// Delete handles DELETE /api/timeline/{id}.
func (h *TimelineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
