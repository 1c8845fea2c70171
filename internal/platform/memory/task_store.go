package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// DefaultLatency is the artificial delay applied before every operation.
const DefaultLatency = 500 * time.Millisecond

// maxIDAttempts bounds the retries when a generated ID already exists.
const maxIDAttempts = 5

// Option configures a MemoryTaskStore.
type Option func(*MemoryTaskStore)

// WithLatency sets the simulated latency. Zero disables it.
func WithLatency(d time.Duration) Option {
	return func(s *MemoryTaskStore) {
		if d < 0 {
			d = 0
		}
		s.latency = d
	}
}

// WithSeed replaces the initial collection. The slice is copied.
func WithSeed(tasks []domain.Task) Option {
	return func(s *MemoryTaskStore) {
		s.tasks = append(make([]domain.Task, 0, len(tasks)), tasks...)
	}
}

// WithIDGenerator overrides how new task IDs are produced.
func WithIDGenerator(gen func() string) Option {
	return func(s *MemoryTaskStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// MemoryTaskStore implements store.TaskStore over an in-process slice.
type MemoryTaskStore struct {
	mu      sync.RWMutex
	tasks   []domain.Task
	latency time.Duration
	newID   func() string
	logger  *slog.Logger
}

// Ensure MemoryTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MemoryTaskStore)(nil)

// NewMemoryTaskStore creates a store seeded with SeedTasks unless WithSeed
// says otherwise. A nil logger falls back to slog.Default().
func NewMemoryTaskStore(log *slog.Logger, opts ...Option) *MemoryTaskStore {
	if log == nil {
		log = slog.Default()
	}

	s := &MemoryTaskStore{
		tasks:   SeedTasks(),
		latency: DefaultLatency,
		newID:   func() string { return uuid.New().String() },
		logger:  log.With(slog.String("component", "memory_task_store")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// wait simulates backend latency. Cancellation is only observed here,
// before any state is read or written.
func (s *MemoryTaskStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// List implements store.TaskStore.
func (s *MemoryTaskStore) List(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result, err := pagination.Slice(s.tasks, pagination.Request{Page: page, PageSize: pageSize})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("rejected page request",
			slog.Int("page", page),
			slog.Int("page_size", pageSize),
			slog.String("error", err.Error()))
		return nil, err
	}
	return result, nil
}

// Get implements store.TaskStore.
func (s *MemoryTaskStore) Get(ctx context.Context, id string) (*domain.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrTaskNotFound
	}
	task := s.tasks[i]
	return &task, nil
}

// Create implements store.TaskStore.
func (s *MemoryTaskStore) Create(ctx context.Context, task domain.Task) (*domain.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID()
	if err != nil {
		return nil, store.NewStoreError("task", "create", "id generation failed", err)
	}
	task.ID = id

	// Prepend: the newest task is always at index 0.
	s.tasks = append(s.tasks, domain.Task{})
	copy(s.tasks[1:], s.tasks)
	s.tasks[0] = task

	logger.FromContextOrDefault(ctx, s.logger).Debug("task created",
		slog.String("task_id", id),
		slog.Int("total", len(s.tasks)))

	created := task
	return &created, nil
}

// Update implements store.TaskStore. A missing ID yields (nil, nil).
func (s *MemoryTaskStore) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		logger.FromContextOrDefault(ctx, s.logger).Debug("update missed", slog.String("task_id", id))
		return nil, nil
	}

	patch.Apply(&s.tasks[i])
	updated := s.tasks[i]
	return &updated, nil
}

// Delete implements store.TaskStore. Removing a missing ID is a no-op.
func (s *MemoryTaskStore) Delete(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	logger.FromContextOrDefault(ctx, s.logger).Debug("task deleted",
		slog.String("task_id", id),
		slog.Int("total", len(s.tasks)))
	return nil
}

// Len returns the current number of tasks.
func (s *MemoryTaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// indexOf must be called with the lock held.
func (s *MemoryTaskStore) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// uniqueID must be called with the write lock held.
func (s *MemoryTaskStore) uniqueID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", store.ErrIDExhausted
}
