package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChangeOp names the mutation that produced a TaskChangedEvent.
type ChangeOp string

// Mutation kinds.
const (
	OpCreated ChangeOp = "created"
	OpUpdated ChangeOp = "updated"
	OpDeleted ChangeOp = "deleted"
)

// TaskChangedEvent is published after the task collection changes.
// Consumers use it to drop anything derived from the old collection.
type TaskChangedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Op is the kind of mutation
	Op ChangeOp `json:"op"`

	// TaskID is the task that was created, updated or deleted
	TaskID string `json:"task_id"`

	// OccurredAt is when the mutation completed
	OccurredAt time.Time `json:"occurred_at"`
}

// NewTaskChangedEvent creates an event for the given mutation.
func NewTaskChangedEvent(op ChangeOp, taskID string) *TaskChangedEvent {
	return &TaskChangedEvent{
		ID:         uuid.New(),
		Op:         op,
		TaskID:     taskID,
		OccurredAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *TaskChangedEvent) error
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ctx context.Context, event *TaskChangedEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *TaskChangedEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *TaskChangedEvent) error
}
