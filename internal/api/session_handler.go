package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/api/shared"
	"github.com/phrazzld/tasktrack/internal/platform/logger"
	"github.com/phrazzld/tasktrack/internal/service/auth"
	"github.com/phrazzld/tasktrack/internal/session"
)

// SessionService starts and ends tracker sessions.
type SessionService interface {
	Start(ctx context.Context) (*session.Session, error)
	End(ctx context.Context, id uuid.UUID) error
}

// SessionHandler handles session lifecycle requests.
type SessionHandler struct {
	sessions SessionService
	tokens   auth.TokenService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions SessionService, tokens auth.TokenService) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		tokens:   tokens,
	}
}

// StartSession handles POST /api/sessions requests.
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	sess, err := h.sessions.Start(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to start session")
		return
	}

	token, expiresAt, err := h.tokens.GenerateToken(r.Context(), sess.ID)
	if err != nil {
		// A session nobody can address would only linger until the idle sweep.
		if endErr := h.sessions.End(r.Context(), sess.ID); endErr != nil {
			log.Warn("failed to discard session after token error",
				"session_id", sess.ID.String(),
				"error", endErr)
		}
		HandleAPIError(w, r, err, "Failed to start session")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SessionResponse{
		SessionID: sess.ID.String(),
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}

// EndSession handles DELETE /api/session requests.
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.sessions.End(r.Context(), sess.ID); err != nil {
		HandleAPIError(w, r, err, "Failed to end session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// sessionFromRequest returns the session placed in the context by the
// session middleware, writing a 401 if it is missing.
func sessionFromRequest(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := shared.SessionFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warn("session not found in request context")
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return nil, false
	}
	return sess, true
}
