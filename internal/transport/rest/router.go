package rest

import "net/http"

// Handlers groups the REST handlers mounted by NewRouter. A nil handler
// leaves its routes unregistered.
type Handlers struct {
	Health   *HealthHandler
	Me       *MeHandler
	Stats    *StatsHandler
	Clients  *ClientHandler
	Projects *ProjectHandler
	Tasks    *TaskHandler
	Timeline *TimelineHandler
}

// NewRouter registers every route on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	if h.Health != nil {
		mux.HandleFunc("GET /live", h.Health.Live)
		mux.HandleFunc("GET /ready", h.Health.Ready)
		mux.HandleFunc("GET /health", h.Health.Health)
	}

	if h.Me != nil {
		mux.HandleFunc("GET /api/me", h.Me.Get)
		mux.HandleFunc("PATCH /api/me", h.Me.Update)
		mux.HandleFunc("DELETE /api/me", h.Me.Delete)
	}

	if h.Stats != nil {
		mux.HandleFunc("GET /api/stats", h.Stats.Dashboard)
	}

	if h.Clients != nil {
		mux.HandleFunc("GET /api/clients", h.Clients.List)
		mux.HandleFunc("POST /api/clients", h.Clients.Create)
		mux.HandleFunc("GET /api/clients/{id}", h.Clients.Get)
		mux.HandleFunc("PATCH /api/clients/{id}", h.Clients.Update)
		mux.HandleFunc("DELETE /api/clients/{id}", h.Clients.Delete)
		mux.HandleFunc("GET /api/clients/{id}/projects", h.Clients.Projects)
	}

	if h.Projects != nil {
		mux.HandleFunc("GET /api/projects", h.Projects.List)
		mux.HandleFunc("POST /api/projects", h.Projects.Create)
		mux.HandleFunc("GET /api/projects/{id}", h.Projects.Get)
		mux.HandleFunc("PATCH /api/projects/{id}", h.Projects.Update)
		mux.HandleFunc("DELETE /api/projects/{id}", h.Projects.Delete)
		mux.HandleFunc("GET /api/projects/{id}/progress", h.Projects.Progress)
		mux.HandleFunc("POST /api/projects/{id}/progress/recompute", h.Projects.RecomputeProgress)
		mux.HandleFunc("GET /api/projects/{id}/clients", h.Projects.Clients)
		mux.HandleFunc("POST /api/projects/{id}/clients", h.Projects.LinkClient)
		mux.HandleFunc("DELETE /api/projects/{id}/clients/{clientID}", h.Projects.UnlinkClient)
	}

	if h.Tasks != nil {
		mux.HandleFunc("GET /api/projects/{id}/tasks", h.Tasks.List)
		mux.HandleFunc("POST /api/projects/{id}/tasks", h.Tasks.Create)
		mux.HandleFunc("PATCH /api/tasks/{id}", h.Tasks.Update)
		mux.HandleFunc("DELETE /api/tasks/{id}", h.Tasks.Delete)
	}

	if h.Timeline != nil {
		mux.HandleFunc("GET /api/projects/{id}/timeline", h.Timeline.List)
		mux.HandleFunc("POST /api/projects/{id}/timeline", h.Timeline.Create)
		mux.HandleFunc("PUT /api/projects/{id}/timeline/order", h.Timeline.Reorder)
		mux.HandleFunc("PATCH /api/timeline/{id}", h.Timeline.Update)
		mux.HandleFunc("DELETE /api/timeline/{id}", h.Timeline.Delete)
	}

	return mux
}
