package metrics

import (
	"context"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// InstrumentedTaskStore wraps a store.TaskStore and records every call.
// Results and errors pass through untouched.
type InstrumentedTaskStore struct {
	next     store.TaskStore
	recorder Recorder
}

var _ store.TaskStore = (*InstrumentedTaskStore)(nil)

// InstrumentTaskStore wraps next with metrics recording.
func InstrumentTaskStore(next store.TaskStore, recorder Recorder) *InstrumentedTaskStore {
	return &InstrumentedTaskStore{next: next, recorder: recorder}
}

func (s *InstrumentedTaskStore) record(op string, start time.Time, outcome string) {
	s.recorder.RecordTaskOperation(op, outcome, time.Since(start))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case store.IsNotFoundError(err):
		return OutcomeMiss
	default:
		return OutcomeError
	}
}

// List implements store.TaskStore.
func (s *InstrumentedTaskStore) List(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error) {
	start := time.Now()
	result, err := s.next.List(ctx, page, pageSize)
	s.record("list", start, outcomeOf(err))
	return result, err
}

// Get implements store.TaskStore.
func (s *InstrumentedTaskStore) Get(ctx context.Context, id string) (*domain.Task, error) {
	start := time.Now()
	task, err := s.next.Get(ctx, id)
	s.record("get", start, outcomeOf(err))
	return task, err
}

// Create implements store.TaskStore.
func (s *InstrumentedTaskStore) Create(ctx context.Context, task domain.Task) (*domain.Task, error) {
	start := time.Now()
	created, err := s.next.Create(ctx, task)
	s.record("create", start, outcomeOf(err))
	return created, err
}

// Update implements store.TaskStore. An update miss counts as "miss".
func (s *InstrumentedTaskStore) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	start := time.Now()
	updated, err := s.next.Update(ctx, id, patch)
	outcome := outcomeOf(err)
	if err == nil && updated == nil {
		outcome = OutcomeMiss
	}
	s.record("update", start, outcome)
	return updated, err
}

// Delete implements store.TaskStore.
func (s *InstrumentedTaskStore) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.record("delete", start, outcomeOf(err))
	return err
}
