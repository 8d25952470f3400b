package api

import (
	"time"

	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/session"
)

// CreateTaskRequest defines the payload for adding a task.
type CreateTaskRequest struct {
	Name     string `json:"name"     validate:"required,max=200"`
	Priority int    `json:"priority" validate:"required,min=1,max=5"`
}

// SessionResponse is returned when a session is started.
type SessionResponse struct {
	SessionID string `json:"session_id"`

	// Token is the bearer token for all further requests in this session
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// TaskResponse represents a single task.
type TaskResponse struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Priority      int        `json:"priority"`
	PriorityLabel string     `json:"priority_label"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// TaskListResponse wraps an ordered list of tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// StatsResponse summarises a session. PendingByPriority is keyed by label.
type StatsResponse struct {
	Pending           int            `json:"pending"`
	Completed         int            `json:"completed"`
	PendingByPriority map[string]int `json:"pending_by_priority"`
}

func toTaskResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		Name:          t.Name,
		Priority:      int(t.Priority),
		PriorityLabel: t.Priority.Label(),
		CreatedAt:     t.CreatedAt,
		CompletedAt:   t.CompletedAt,
	}
}

func toTaskListResponse(tasks []domain.Task) TaskListResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return TaskListResponse{Tasks: out, Count: len(out)}
}

func toStatsResponse(s session.Stats) StatsResponse {
	byLabel := make(map[string]int, len(s.PendingByPriority))
	for p, n := range s.PendingByPriority {
		byLabel[p.Label()] = n
	}
	return StatsResponse{
		Pending:           s.Pending,
		Completed:         s.Completed,
		PendingByPriority: byLabel,
	}
}
