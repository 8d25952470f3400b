package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	GenerateTokenFn func(ctx context.Context, sessionID uuid.UUID) (string, time.Time, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	ExpiresAt   time.Time
	Err         error
	Claims      *auth.Claims
	ValidateErr error

	mu              sync.Mutex
	ValidatedTokens []string
}

var _ auth.TokenService = (*MockTokenService)(nil)

// GenerateToken implements the auth.TokenService interface
func (m *MockTokenService) GenerateToken(ctx context.Context, sessionID uuid.UUID) (string, time.Time, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, sessionID)
	}
	return m.Token, m.ExpiresAt, m.Err
}

// ValidateToken implements the auth.TokenService interface and records the
// token it was called with.
func (m *MockTokenService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	m.mu.Lock()
	m.ValidatedTokens = append(m.ValidatedTokens, tokenString)
	m.mu.Unlock()

	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// ClaimsFor returns a ValidateTokenFn accepting any token as belonging to sessionID.
func ClaimsFor(sessionID uuid.UUID) func(context.Context, string) (*auth.Claims, error) {
	return func(context.Context, string) (*auth.Claims, error) {
		return &auth.Claims{
			SessionID: sessionID,
			TokenType: auth.TokenTypeSession,
			Subject:   sessionID.String(),
		}, nil
	}
}
