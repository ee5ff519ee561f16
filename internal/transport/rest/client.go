package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/config"
	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/internal/service/client"
)

type clientService interface {
	CreateClient(ctx context.Context, input client.CreateClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, clientID uuid.UUID) (*domain.Client, error)
	ListClients(ctx context.Context, input client.ListClientsInput) ([]*domain.Client, error)
	UpdateClient(ctx context.Context, input client.UpdateClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID uuid.UUID) error
	ListProjects(ctx context.Context, clientID uuid.UUID) ([]*domain.Project, error)
}

// ClientHandler serves /api/clients.
type ClientHandler struct {
	svc   clientService
	pages config.APIConfig
	log   *slog.Logger
	now   func() time.Time
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(svc clientService, pages config.APIConfig, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		svc:   svc,
		pages: pages,
		log:   logger.With("handler", "client"),
		now:   time.Now,
	}
}

type createClientRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Notes   *string `json:"notes"`
}

type updateClientRequest struct {
	Name    optional[string] `json:"name"`
	Email   optional[string] `json:"email"`
	Phone   optional[string] `json:"phone"`
	Company optional[string] `json:"company"`
	Notes   optional[string] `json:"notes"`
}

// List handles GET /api/clients?q=&limit=&offset=.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	clients, err := h.svc.ListClients(r.Context(), client.ListClientsInput{
		Search: r.URL.Query().Get("q"),
		Limit:  h.pages.ClampLimit(limit),
		Offset: offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientResponses(clients))
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.CreateClient(r.Context(), client.CreateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Notes:   req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toClientResponse(c))
}

// Get handles GET /api/clients/{id}.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.svc.GetClient(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientResponse(c))
}

// Update handles PATCH /api/clients/{id}. A null clears an optional field.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateClient(r.Context(), client.UpdateClientInput{
		ClientID: id,
		Name:     req.Name.ptr(),
		Email:    clearable(req.Email),
		Phone:    clearable(req.Phone),
		Company:  clearable(req.Company),
		Notes:    clearable(req.Notes),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientResponse(c))
}

// Delete handles DELETE /api/clients/{id}. Links to projects are removed,
// the projects themselves stay.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteClient(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Projects handles GET /api/clients/{id}/projects.
func (h *ClientHandler) Projects(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	projects, err := h.svc.ListProjects(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponses(projects, h.now()))
}
