package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskDataSource is the thin adapter between the repository and the task store.
// Apart from Delete, every method forwards its arguments and results unchanged.
type TaskDataSource interface {
	// List returns one page of tasks; zero page or pageSize select the store defaults.
	List(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error)

	// Get retrieves a task by ID. Returns store.ErrTaskNotFound on a miss.
	Get(ctx context.Context, id string) (*domain.Task, error)

	// Create stores a new task and returns it with its assigned ID.
	Create(ctx context.Context, task domain.Task) (*domain.Task, error)

	// Update merges patch onto a task. Returns (nil, nil) when the ID is missing.
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes a task and reports true. It never returns (false, nil).
	Delete(ctx context.Context, id string) (bool, error)
}

// taskDataSourceImpl implements the TaskDataSource interface
type taskDataSourceImpl struct {
	store  store.TaskStore
	logger *slog.Logger
}

// NewTaskDataSource creates a TaskDataSource backed by the given store.
// It returns an error if the store is nil.
func NewTaskDataSource(taskStore store.TaskStore, logger *slog.Logger) (TaskDataSource, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskDataSourceImpl{
		store:  taskStore,
		logger: logger.With(slog.String("component", "task_datasource")),
	}, nil
}

// List implements TaskDataSource.List
func (d *taskDataSourceImpl) List(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error) {
	return d.store.List(ctx, page, pageSize)
}

// Get implements TaskDataSource.Get
func (d *taskDataSourceImpl) Get(ctx context.Context, id string) (*domain.Task, error) {
	return d.store.Get(ctx, id)
}

// Create implements TaskDataSource.Create
func (d *taskDataSourceImpl) Create(ctx context.Context, task domain.Task) (*domain.Task, error) {
	return d.store.Create(ctx, task)
}

// Update implements TaskDataSource.Update
func (d *taskDataSourceImpl) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	return d.store.Update(ctx, id, patch)
}

// Delete implements TaskDataSource.Delete
func (d *taskDataSourceImpl) Delete(ctx context.Context, id string) (bool, error) {
	if err := d.store.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
