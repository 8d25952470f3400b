package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasktrack/internal/api/shared"
	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/service/auth"
	"github.com/phrazzld/tasktrack/internal/session"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so that
// internal error types never reach clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, session.ErrSessionExpired):
		return http.StatusUnauthorized

	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound

	// Empty queue or stack: the request is well formed but the session state
	// does not allow it.
	case errors.Is(err, domain.ErrEmpty):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrNameTooLong),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	case errors.Is(err, session.ErrTooManySessions):
		return http.StatusServiceUnavailable

	default:
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, auth.ErrMissingToken):
		return "Authorization header required"

	case errors.Is(err, session.ErrSessionNotFound):
		return "Session not found"

	case errors.Is(err, session.ErrSessionExpired):
		return "Session expired"

	case errors.Is(err, session.ErrNoPendingTasks):
		return "No pending tasks"

	case errors.Is(err, session.ErrNoCompletedTasks):
		return "No completed tasks to undo"

	case errors.Is(err, domain.ErrEmptyName):
		return "Task name cannot be empty"

	case errors.Is(err, domain.ErrNameTooLong):
		return fmt.Sprintf("Task name must be at most %d characters", domain.MaxTaskNameLength)

	case errors.Is(err, domain.ErrInvalidPriority):
		return "Priority must be between 1 and 5"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	case errors.Is(err, session.ErrTooManySessions):
		return "Too many active sessions, try again later"
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return SanitizeValidationError(err)
	}
	return "An unexpected error occurred"
}

// SanitizeValidationError turns validator errors into a short message naming
// the offending fields, without echoing struct or package names.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("Invalid %s: %s",
			strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag())))
	}
	return strings.Join(msgs, "; ")
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too small"
	case "max":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes an error response for err, using the mapped status
// code. The safe message for err is used unless fallbackMsg is non-empty and
// err has no specific mapping.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if fallbackMsg != "" && status == http.StatusInternalServerError {
		msg = fallbackMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}
