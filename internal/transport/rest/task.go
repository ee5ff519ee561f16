package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/internal/service/task"
)

type taskService interface {
	CreateTask(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

// TaskHandler serves project tasks.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Done        bool    `json:"done"`
	Priority    *int    `json:"priority"`
	DueDate     *date   `json:"dueDate"`
}

type updateTaskRequest struct {
	Title       optional[string] `json:"title"`
	Description optional[string] `json:"description"`
	Done        optional[bool]   `json:"done"`
	Priority    optional[int]    `json:"priority"`
	DueDate     optional[date]   `json:"dueDate"`
}

// List handles GET /api/projects/{id}/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), projectID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponses(tasks))
}

// Create handles POST /api/projects/{id}/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req createTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.CreateTask(r.Context(), task.CreateTaskInput{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Done:        req.Done,
		Priority:    req.Priority,
		DueDate:     req.DueDate.time(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponse(t))
}

// Update handles PATCH /api/tasks/{id}. Project progress is not touched.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.UpdateTask(r.Context(), task.UpdateTaskInput{
		TaskID:       id,
		Title:        req.Title.ptr(),
		Description:  clearable(req.Description),
		Done:         req.Done.ptr(),
		Priority:     req.Priority.ptr(),
		DueDate:      dateValue(req.DueDate),
		ClearDueDate: req.DueDate.cleared(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
