package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/api/shared"
	"github.com/phrazzld/tasktrack/internal/platform/logger"
	"github.com/phrazzld/tasktrack/internal/service/auth"
	"github.com/phrazzld/tasktrack/internal/session"
)

// SessionLookup resolves a session ID to a live session.
type SessionLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*session.Session, error)
}

// SessionMiddleware resolves the bearer token on each request to the tracker
// session it was issued for.
type SessionMiddleware struct {
	tokens   auth.TokenService
	sessions SessionLookup
}

// NewSessionMiddleware creates a SessionMiddleware with the given dependencies.
func NewSessionMiddleware(tokens auth.TokenService, sessions SessionLookup) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:   tokens,
		sessions: sessions,
	}
}

// Authenticate validates the token in the Authorization header and places
// the matching session in the request context.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
				"Authorization header required", auth.ErrMissingToken)
			return
		}

		claims, err := m.tokens.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Token expired", err)
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrWrongTokenType):
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid token", err)
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"Authentication error", err)
			}
			return
		}

		sess, err := m.sessions.Get(r.Context(), claims.SessionID)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrSessionNotFound):
				shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, "Session not found", err)
			case errors.Is(err, session.ErrSessionExpired):
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Session expired", err)
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"Authentication error", err)
			}
			return
		}

		ctx := shared.WithSession(r.Context(), sess)
		ctx = logger.WithLogger(ctx, logger.FromContext(ctx).With("session_id", sess.ID.String()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
