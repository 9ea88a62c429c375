package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/andreluizn/tasktrack/internal/common"
	"github.com/andreluizn/tasktrack/internal/middleware"
	"github.com/andreluizn/tasktrack/internal/models"
	"github.com/go-chi/chi/v5"
)

// TaskService defines the interface for task operations required by the
// TaskHandler. Every operation is scoped to the authenticated owner.
type TaskService interface {
	List(ctx context.Context, ownerID string) ([]models.Task, error)
	Create(ctx context.Context, ownerID, title, description string, dueDate *time.Time) (*models.Task, error)
	UpdateStatus(ctx context.Context, ownerID, taskID, status string) (*models.Task, error)
	Remove(ctx context.Context, ownerID, taskID string) error
	ListFinished(ctx context.Context, ownerID string) ([]models.FinishedTask, error)
}

// TaskHandler handles HTTP requests for the task endpoints.
type TaskHandler struct {
	TaskService TaskService
}

// CreateTaskRequest represents the JSON payload for task creation. The due
// date arrives as a string because clients send either a bare date
// ("2024-10-05") or a full RFC 3339 timestamp.
type CreateTaskRequest struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	DueDate     string `json:"data"`
}

// UpdateStatusRequest represents the JSON payload for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /tasks requests, returning all active tasks of the
// authenticated user in creation order.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	tasks, err := h.TaskService.List(r.Context(), userID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// Create handles POST /tasks requests. It expects "titulo", optional
// "descricao" and optional "data" fields and responds with the persisted
// task, including its generated ID.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid due date")
		return
	}

	task, err := h.TaskService.Create(r.Context(), userID, req.Title, req.Description, dueDate)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, task)
	case errors.Is(err, common.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "title is required")
	default:
		writeMessage(w, http.StatusInternalServerError, "failed to create task")
	}
}

// UpdateStatus handles PUT /tasks/{id} requests, overwriting only the
// status field and returning the updated task.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	task, err := h.TaskService.UpdateStatus(r.Context(), userID, taskID, req.Status)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, task)
	case errors.Is(err, common.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "invalid status")
	case errors.Is(err, common.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "task not found")
	case errors.Is(err, common.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "task belongs to another user")
	default:
		writeMessage(w, http.StatusInternalServerError, "failed to update task")
	}
}

// Delete handles DELETE /tasks/{id} requests. The task is snapshotted into
// the finished collection before removal; if the snapshot cannot be written
// the task stays in place.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	err := h.TaskService.Remove(r.Context(), userID, taskID)
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "task archived")
	case errors.Is(err, common.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "task not found")
	case errors.Is(err, common.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "task belongs to another user")
	default:
		writeMessage(w, http.StatusInternalServerError, "failed to archive task")
	}
}

// Finished handles GET /tasks/finished requests, returning the
// authenticated user's archived task snapshots.
func (h *TaskHandler) Finished(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	tasks, err := h.TaskService.ListFinished(r.Context(), userID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to list finished tasks")
		return
	}
	if tasks == nil {
		tasks = []models.FinishedTask{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// parseDueDate accepts an empty string (no due date), a bare date or a full
// RFC 3339 timestamp.
func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("unsupported date format")
}
