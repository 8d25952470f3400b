package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTaskNameLength bounds the number of characters in a task name.
const MaxTaskNameLength = 200

// Priority is a task's urgency on a 1..5 scale, where 1 is the most urgent.
type Priority int

// Valid priority values.
const (
	PriorityCritical Priority = 1
	PriorityHigh     Priority = 2
	PriorityMedium   Priority = 3
	PriorityLow      Priority = 4
	PriorityVeryLow  Priority = 5
)

// Valid reports whether p lies on the 1..5 scale.
func (p Priority) Valid() bool {
	return p >= PriorityCritical && p <= PriorityVeryLow
}

// Label returns the human-readable name of the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	case PriorityVeryLow:
		return "Very Low"
	default:
		return "Unknown"
	}
}

// Task is a unit of work tracked by a session. A task is either pending
// (CompletedAt is nil) or completed.
type Task struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Priority    Priority   `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewTask creates a pending Task. The name is trimmed before validation.
// Returns an error wrapping ErrValidation if the name or priority is invalid.
func NewTask(id int, name string, priority Priority, createdAt time.Time) (Task, error) {
	task := Task{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Priority:  priority,
		CreatedAt: createdAt.UTC(),
	}

	if err := task.Validate(); err != nil {
		return Task{}, err
	}

	return task, nil
}

// Validate checks the task's name and priority.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyName)
	}

	if utf8.RuneCountInString(t.Name) > MaxTaskNameLength {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNameTooLong)
	}

	if !t.Priority.Valid() {
		return fmt.Errorf("%w: %w (got %d)", ErrValidation, ErrInvalidPriority, t.Priority)
	}

	return nil
}

// IsCompleted reports whether the task carries a completion timestamp.
func (t Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

// MarkCompleted stamps the task with its completion time.
func (t *Task) MarkCompleted(at time.Time) {
	completedAt := at.UTC()
	t.CompletedAt = &completedAt
}

// Reopen clears the completion timestamp.
func (t *Task) Reopen() {
	t.CompletedAt = nil
}

// ByPriority orders tasks by priority alone. It is the heap comparator:
// creation time is deliberately not consulted, so ties come out in whatever
// order the heap shape yields.
func ByPriority(a, b Task) bool {
	return a.Priority < b.Priority
}

// SortForDisplay orders pending tasks by priority, then creation time, then ID.
func SortForDisplay(tasks []Task) {
	slices.SortStableFunc(tasks, func(a, b Task) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
