package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// PageLister serves task pages for the list endpoint.
// service.PageCache satisfies it.
type PageLister interface {
	List(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error)
}

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	repo   service.TaskRepository
	pages  PageLister
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler. Reads of single tasks and all
// mutations go through repo; list requests go through pages.
func NewTaskHandler(repo service.TaskRepository, pages PageLister, logger *slog.Logger) *TaskHandler {
	if repo == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("repository cannot be nil for TaskHandler")
	}
	if pages == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("page lister cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		repo:   repo,
		pages:  pages,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /api/tasks?page=&pageSize=.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	req, err := getPageRequest(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.pages.List(r.Context(), req.Page, req.PageSize)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}

// GetTask handles GET /api/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.repo.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid create task request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := h.repo.AddTask(r.Context(), req.ToTask())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	log.Debug("task created", slog.String("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// UpdateTask handles PATCH /api/tasks/{id}.
// The repository reports a missing task as (nil, nil); here that becomes a 404.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid update task request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := h.repo.EditTask(r.Context(), id, req.ToPatch())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if task == nil {
		log.Debug("update target not found", slog.String("task_id", id))
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	deleted, err := h.repo.DeleteTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{Deleted: deleted})
}
