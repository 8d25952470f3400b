package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/tasktrack/internal/api/shared"
	"github.com/phrazzld/tasktrack/internal/domain"
)

// TaskHandler handles task requests against the session in the request
// context.
type TaskHandler struct{}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler() *TaskHandler {
	return &TaskHandler{}
}

// CreateTask handles POST /api/tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		msg := "Invalid request format"
		if errors.Is(err, shared.ErrEmptyBody) {
			msg = GetSafeErrorMessage(err)
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msg, err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := sess.AddTask(r.Context(), req.Name, domain.Priority(req.Priority))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toTaskResponse(task))
}

// ListPending handles GET /api/tasks requests. Tasks are ordered by priority,
// then creation time.
func (h *TaskHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, toTaskListResponse(sess.Pending()))
}

// NextTask handles GET /api/tasks/next requests. Responds 204 when nothing
// is pending.
func (h *TaskHandler) NextTask(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	task, found := sess.NextTask()
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, toTaskResponse(task))
}

// CompleteNext handles POST /api/tasks/complete requests.
func (h *TaskHandler) CompleteNext(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	task, err := sess.Complete(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to complete task")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, toTaskResponse(task))
}

// ListCompleted handles GET /api/completed requests, most recent first.
func (h *TaskHandler) ListCompleted(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, toTaskListResponse(sess.Completed()))
}

// UndoLast handles POST /api/completed/undo requests.
func (h *TaskHandler) UndoLast(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	task, err := sess.Undo(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to undo completion")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, toTaskResponse(task))
}

// Stats handles GET /api/stats requests.
func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, toStatsResponse(sess.Stats()))
}
