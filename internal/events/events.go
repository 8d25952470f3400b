package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType identifies what happened.
type EventType string

// Lifecycle event types.
const (
	TypeSessionStarted EventType = "session.started"
	TypeSessionEnded   EventType = "session.ended"
	TypeTaskAdded      EventType = "task.added"
	TypeTaskCompleted  EventType = "task.completed"
	TypeTaskReopened   EventType = "task.reopened"
)

// TaskEvent describes a change in a session's task lists.
// Session events leave TaskID and Priority zero.
type TaskEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	Type      EventType `json:"type"`
	SessionID uuid.UUID `json:"session_id"`
	TaskID    int       `json:"task_id,omitempty"`
	TaskName  string    `json:"task_name,omitempty"`
	Priority  int       `json:"priority,omitempty"`

	// OccurredAt is the timestamp when the event was created
	OccurredAt time.Time `json:"occurred_at"`
}

// NewTaskEvent creates a TaskEvent with a fresh ID.
func NewTaskEvent(eventType EventType, sessionID uuid.UUID, occurredAt time.Time) *TaskEvent {
	return &TaskEvent{
		ID:         uuid.New(),
		Type:       eventType,
		SessionID:  sessionID,
		OccurredAt: occurredAt,
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *TaskEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows sessions to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *TaskEvent) error
}

// HandlerFunc adapts an ordinary function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event *TaskEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *TaskEvent) error {
	return f(ctx, event)
}

// NopEmitter discards every event.
type NopEmitter struct{}

// EmitEvent implements EventEmitter.
func (NopEmitter) EmitEvent(context.Context, *TaskEvent) error { return nil }
