package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/config"
	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/internal/service/project"
)

type projectService interface {
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.ProjectDetail, error)
	ListProjects(ctx context.Context, input project.ListProjectsInput) ([]*domain.Project, error)
	UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	Progress(ctx context.Context, projectID uuid.UUID) (domain.ProgressReport, error)
	RecomputeProgress(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	LinkClient(ctx context.Context, input project.LinkClientInput) (*domain.ProjectClient, error)
	UnlinkClient(ctx context.Context, projectID, clientID uuid.UUID) error
	ListClients(ctx context.Context, projectID uuid.UUID) ([]*domain.LinkedClient, error)
}

// ProjectHandler serves /api/projects and the project's client links.
type ProjectHandler struct {
	svc   projectService
	pages config.APIConfig
	log   *slog.Logger
	now   func() time.Time
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, pages config.APIConfig, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		svc:   svc,
		pages: pages,
		log:   logger.With("handler", "project"),
		now:   time.Now,
	}
}

type createProjectRequest struct {
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	Kind         string   `json:"kind"`
	Status       string   `json:"status"`
	PaymentState string   `json:"paymentState"`
	ProgressPct  int      `json:"progressPct"`
	Budget       *float64 `json:"budget"`
	PaidAmount   float64  `json:"paidAmount"`
	StartDate    *date    `json:"startDate"`
	EndDate      *date    `json:"endDate"`
	Deadline     *date    `json:"deadline"`
}

type updateProjectRequest struct {
	Title        optional[string]  `json:"title"`
	Description  optional[string]  `json:"description"`
	Kind         optional[string]  `json:"kind"`
	Status       optional[string]  `json:"status"`
	PaymentState optional[string]  `json:"paymentState"`
	ProgressPct  optional[int]     `json:"progressPct"`
	Budget       optional[float64] `json:"budget"`
	PaidAmount   optional[float64] `json:"paidAmount"`
	StartDate    optional[date]    `json:"startDate"`
	EndDate      optional[date]    `json:"endDate"`
	Deadline     optional[date]    `json:"deadline"`
}

type linkClientRequest struct {
	ClientID string  `json:"clientId"`
	Note     *string `json:"note"`
}

// List handles GET /api/projects?status=&kind=&paymentState=&q=&limit=&offset=.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	q := r.URL.Query()

	projects, err := h.svc.ListProjects(r.Context(), project.ListProjectsInput{
		Status:       queryEnum[domain.ProjectStatus](q.Get("status")),
		Kind:         queryEnum[domain.ProjectKind](q.Get("kind")),
		PaymentState: queryEnum[domain.PaymentState](q.Get("paymentState")),
		Search:       q.Get("q"),
		Limit:        h.pages.ClampLimit(limit),
		Offset:       offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponses(projects, h.now()))
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.CreateProject(r.Context(), project.CreateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Kind:         domain.ProjectKind(req.Kind),
		Status:       domain.ProjectStatus(req.Status),
		PaymentState: domain.PaymentState(req.PaymentState),
		ProgressPct:  req.ProgressPct,
		Budget:       req.Budget,
		PaidAmount:   req.PaidAmount,
		StartDate:    req.StartDate.time(),
		EndDate:      req.EndDate.time(),
		Deadline:     req.Deadline.time(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectResponse(p, h.now()))
}

// Get handles GET /api/projects/{id} and returns the full project detail.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectDetailResponse(detail, h.now()))
}

// Update handles PATCH /api/projects/{id}. A null clears budget, dates
// and description.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.UpdateProject(r.Context(), project.UpdateProjectInput{
		ProjectID:      id,
		Title:          req.Title.ptr(),
		Description:    clearable(req.Description),
		Kind:           enumPtr[domain.ProjectKind](req.Kind),
		Status:         enumPtr[domain.ProjectStatus](req.Status),
		PaymentState:   enumPtr[domain.PaymentState](req.PaymentState),
		ProgressPct:    req.ProgressPct.ptr(),
		Budget:         req.Budget.ptr(),
		ClearBudget:    req.Budget.cleared(),
		PaidAmount:     req.PaidAmount.ptr(),
		StartDate:      dateValue(req.StartDate),
		ClearStartDate: req.StartDate.cleared(),
		EndDate:        dateValue(req.EndDate),
		ClearEndDate:   req.EndDate.cleared(),
		Deadline:       dateValue(req.Deadline),
		ClearDeadline:  req.Deadline.cleared(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p, h.now()))
}

// Delete handles DELETE /api/projects/{id}. Tasks, timeline entries and
// client links are removed with it.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Progress handles GET /api/projects/{id}/progress.
func (h *ProjectHandler) Progress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	report, err := h.svc.Progress(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, progressResponse{
		Total:    report.Total,
		Done:     report.Done,
		Computed: report.Computed,
		Stored:   report.Stored,
	})
}

// RecomputeProgress handles POST /api/projects/{id}/progress/recompute.
func (h *ProjectHandler) RecomputeProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.svc.RecomputeProgress(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p, h.now()))
}

// Clients handles GET /api/projects/{id}/clients.
func (h *ProjectHandler) Clients(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	clients, err := h.svc.ListClients(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make([]linkedClientResponse, len(clients))
	for i, c := range clients {
		out[i] = toLinkedClientResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// LinkClient handles POST /api/projects/{id}/clients.
func (h *ProjectHandler) LinkClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req linkClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("client_id", "must be a UUID"))
		return
	}

	link, err := h.svc.LinkClient(r.Context(), project.LinkClientInput{
		ProjectID: id,
		ClientID:  clientID,
		Note:      req.Note,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, projectClientResponse{
		ID:        link.ID.String(),
		ProjectID: link.ProjectID.String(),
		ClientID:  link.ClientID.String(),
		Note:      link.Note,
		CreatedAt: link.CreatedAt,
	})
}

// UnlinkClient handles DELETE /api/projects/{id}/clients/{clientID}.
func (h *ProjectHandler) UnlinkClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	clientID, ok := pathID(w, r, "clientID")
	if !ok {
		return
	}

	if err := h.svc.UnlinkClient(r.Context(), id, clientID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryEnum returns nil for an empty query value. Invalid values are passed
// through for the service to reject.
func queryEnum[T ~string](v string) *T {
	if v == "" {
		return nil
	}
	e := T(v)
	return &e
}

func enumPtr[T ~string](o optional[string]) *T {
	s := o.ptr()
	if s == nil {
		return nil
	}
	e := T(*s)
	return &e
}
