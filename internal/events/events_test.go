package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskChangedEvent(t *testing.T) {
	event := NewTaskChangedEvent(OpUpdated, "7")

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, OpUpdated, event.Op)
	assert.Equal(t, "7", event.TaskID)
	assert.False(t, event.OccurredAt.IsZero())

	other := NewTaskChangedEvent(OpUpdated, "7")
	assert.NotEqual(t, event.ID, other.ID)
}

func TestTaskChangedEvent_JSON(t *testing.T) {
	event := NewTaskChangedEvent(OpDeleted, "3")

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "deleted", fields["op"])
	assert.Equal(t, "3", fields["task_id"])
	assert.Contains(t, fields, "occurred_at")
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *TaskChangedEvent
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *TaskChangedEvent) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestEventHandlerFunc(t *testing.T) {
	var got *TaskChangedEvent
	handler := EventHandlerFunc(func(_ context.Context, e *TaskChangedEvent) error {
		got = e
		return errors.New("boom")
	})

	event := NewTaskChangedEvent(OpCreated, "x")
	err := handler.HandleEvent(context.Background(), event)

	assert.EqualError(t, err, "boom")
	assert.Same(t, event, got)
}
