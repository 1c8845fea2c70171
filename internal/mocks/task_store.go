package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
)

// ListCall records the arguments of a List call.
type ListCall struct {
	Page     int
	PageSize int
}

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Custom behavior functions
	ListFn   func(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error)
	GetFn    func(ctx context.Context, id string) (*domain.Task, error)
	CreateFn func(ctx context.Context, task domain.Task) (*domain.Task, error)
	UpdateFn func(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteFn func(ctx context.Context, id string) error

	// Default return values
	Page         *pagination.Page[domain.Task]
	Task         *domain.Task
	DefaultError error

	mu        sync.Mutex
	ListCalls []ListCall
	DeleteIDs []string
}

// List implements the TaskStore.List method
func (m *MockTaskStore) List(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error) {
	m.mu.Lock()
	m.ListCalls = append(m.ListCalls, ListCall{Page: page, PageSize: pageSize})
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx, page, pageSize)
	}
	return m.Page, m.DefaultError
}

// Get implements the TaskStore.Get method
func (m *MockTaskStore) Get(ctx context.Context, id string) (*domain.Task, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// Create implements the TaskStore.Create method
func (m *MockTaskStore) Create(ctx context.Context, task domain.Task) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.Task, m.DefaultError
}

// Update implements the TaskStore.Update method
func (m *MockTaskStore) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return m.Task, m.DefaultError
}

// Delete implements the TaskStore.Delete method
func (m *MockTaskStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	m.DeleteIDs = append(m.DeleteIDs, id)
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}

// ListCallCount returns how many times List was called.
func (m *MockTaskStore) ListCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ListCalls)
}
