package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenTypeSession is the token type claim carried by session tokens.
const TokenTypeSession = "session"

// TokenService defines operations for managing session tokens.
type TokenService interface {
	// GenerateToken creates a signed token for the given session.
	// Returns the token string and its expiry time.
	GenerateToken(ctx context.Context, sessionID uuid.UUID) (string, time.Time, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns an error if validation fails (expired, invalid signature, wrong type).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for session tokens.
type Claims struct {
	// SessionID identifies the tracker session the token was issued for.
	SessionID uuid.UUID `json:"sid,omitempty"`

	// TokenType guards against tokens minted for other purposes.
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
