package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	DeleteAccount(ctx context.Context) error
}

// MeHandler serves the caller's own identity under /api/me.
type MeHandler struct {
	svc userService
	log *slog.Logger
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(svc userService, logger *slog.Logger) *MeHandler {
	return &MeHandler{svc: svc, log: logger.With("handler", "me")}
}

type updateProfileRequest struct {
	DisplayName optional[string] `json:"displayName"`
	AvatarURL   optional[string] `json:"avatarUrl"`
}

// Get handles GET /api/me.
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PATCH /api/me. A null clears the field.
func (h *MeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		DisplayName: clearable(req.DisplayName),
		AvatarURL:   clearable(req.AvatarURL),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /api/me. All owned data goes with the account.
func (h *MeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAccount(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
