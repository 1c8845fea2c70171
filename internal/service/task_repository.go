package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
)

// TaskRepository is the entry point for task operations used by the delivery layers.
// Results and errors from the data source are returned unchanged.
type TaskRepository interface {
	// ListTasks returns the given page at the default page size.
	// A zero page selects the first page.
	ListTasks(ctx context.Context, page int) (*pagination.Page[domain.Task], error)

	// GetTask retrieves a task by ID.
	GetTask(ctx context.Context, id string) (*domain.Task, error)

	// AddTask creates a task.
	AddTask(ctx context.Context, task domain.Task) (*domain.Task, error)

	// EditTask applies a partial update. A missing ID yields (nil, nil).
	EditTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)

	// DeleteTask removes a task and reports true on success.
	DeleteTask(ctx context.Context, id string) (bool, error)
}

// taskRepositoryImpl implements the TaskRepository interface
type taskRepositoryImpl struct {
	source  TaskDataSource
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewTaskRepository creates a TaskRepository over the given data source.
// The emitter is optional; when set, a TaskChangedEvent is published after
// every successful mutation.
func NewTaskRepository(
	source TaskDataSource,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (TaskRepository, error) {
	if source == nil {
		return nil, domain.NewValidationError("source", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskRepositoryImpl{
		source:  source,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "task_repository")),
	}, nil
}

// ListTasks implements TaskRepository.ListTasks.
// Only the page is forwarded; the page size stays at the store default.
func (r *taskRepositoryImpl) ListTasks(ctx context.Context, page int) (*pagination.Page[domain.Task], error) {
	return r.source.List(ctx, page, 0)
}

// GetTask implements TaskRepository.GetTask
func (r *taskRepositoryImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return r.source.Get(ctx, id)
}

// AddTask implements TaskRepository.AddTask
func (r *taskRepositoryImpl) AddTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	created, err := r.source.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	r.publish(ctx, events.OpCreated, created.ID)
	return created, nil
}

// EditTask implements TaskRepository.EditTask
func (r *taskRepositoryImpl) EditTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	updated, err := r.source.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		r.publish(ctx, events.OpUpdated, id)
	}
	return updated, nil
}

// DeleteTask implements TaskRepository.DeleteTask
func (r *taskRepositoryImpl) DeleteTask(ctx context.Context, id string) (bool, error) {
	deleted, err := r.source.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.publish(ctx, events.OpDeleted, id)
	return deleted, nil
}

// publish emits a change event. A handler failure is logged and does not
// undo or fail the mutation that already happened.
func (r *taskRepositoryImpl) publish(ctx context.Context, op events.ChangeOp, taskID string) {
	if r.emitter == nil {
		return
	}
	if err := r.emitter.EmitEvent(ctx, events.NewTaskChangedEvent(op, taskID)); err != nil {
		logger.FromContextOrDefault(ctx, r.logger).Warn("task change event not fully handled",
			slog.String("op", string(op)),
			slog.String("task_id", taskID),
			slog.String("error", err.Error()))
	}
}
