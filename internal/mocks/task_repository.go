package mocks

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
)

// MockTaskRepository implements service.TaskRepository for testing
type MockTaskRepository struct {
	ListTasksFn  func(ctx context.Context, page int) (*pagination.Page[domain.Task], error)
	GetTaskFn    func(ctx context.Context, id string) (*domain.Task, error)
	AddTaskFn    func(ctx context.Context, task domain.Task) (*domain.Task, error)
	EditTaskFn   func(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id string) (bool, error)

	// Default return values
	Page         *pagination.Page[domain.Task]
	Task         *domain.Task
	DefaultError error
}

// ListTasks implements the TaskRepository.ListTasks method
func (m *MockTaskRepository) ListTasks(ctx context.Context, page int) (*pagination.Page[domain.Task], error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, page)
	}
	return m.Page, m.DefaultError
}

// GetTask implements the TaskRepository.GetTask method
func (m *MockTaskRepository) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// AddTask implements the TaskRepository.AddTask method
func (m *MockTaskRepository) AddTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	if m.AddTaskFn != nil {
		return m.AddTaskFn(ctx, task)
	}
	return m.Task, m.DefaultError
}

// EditTask implements the TaskRepository.EditTask method
func (m *MockTaskRepository) EditTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if m.EditTaskFn != nil {
		return m.EditTaskFn(ctx, id, patch)
	}
	return m.Task, m.DefaultError
}

// DeleteTask implements the TaskRepository.DeleteTask method
func (m *MockTaskRepository) DeleteTask(ctx context.Context, id string) (bool, error) {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return m.DefaultError == nil, m.DefaultError
}
