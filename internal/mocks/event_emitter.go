package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/events"
)

// MockEventEmitter implements events.EventEmitter and records what it was given.
type MockEventEmitter struct {
	EmitEventFn func(ctx context.Context, event *events.TaskChangedEvent) error

	mu     sync.Mutex
	Events []*events.TaskChangedEvent
}

// EmitEvent implements the EventEmitter.EmitEvent method
func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.TaskChangedEvent) error {
	m.mu.Lock()
	m.Events = append(m.Events, event)
	m.mu.Unlock()

	if m.EmitEventFn != nil {
		return m.EmitEventFn(ctx, event)
	}
	return nil
}

// Emitted returns a snapshot of the recorded events.
func (m *MockEventEmitter) Emitted() []*events.TaskChangedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*events.TaskChangedEvent(nil), m.Events...)
}
