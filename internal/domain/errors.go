// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is usually joined with a more specific error below.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyName is returned when a task name is blank.
	ErrEmptyName = errors.New("task name cannot be empty")

	// ErrNameTooLong is returned when a task name exceeds MaxTaskNameLength.
	ErrNameTooLong = errors.New("task name is too long")

	// ErrInvalidPriority is returned when a priority is outside [1,5].
	ErrInvalidPriority = errors.New("priority must be between 1 and 5")

	// ErrEmpty signals that a container held no task to return.
	// It is an expected state, not a failure of the container.
	ErrEmpty = errors.New("no task available")
)
