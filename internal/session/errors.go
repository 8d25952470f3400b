package session

import (
	"errors"
	"fmt"

	"github.com/phrazzld/tasktrack/internal/domain"
)

// Session errors.
var (
	// ErrNoPendingTasks is returned by Complete when the pending queue is empty.
	ErrNoPendingTasks = fmt.Errorf("no pending tasks: %w", domain.ErrEmpty)

	// ErrNoCompletedTasks is returned by Undo when the completed stack is empty.
	ErrNoCompletedTasks = fmt.Errorf("no completed tasks: %w", domain.ErrEmpty)

	// ErrSessionNotFound is returned when no session has the requested ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when the session was idle past its timeout.
	ErrSessionExpired = errors.New("session expired")

	// ErrTooManySessions is returned by Start when the session cap is reached.
	ErrTooManySessions = errors.New("too many active sessions")
)
