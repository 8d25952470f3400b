package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/events"
)

// ManagerConfig bounds the number and lifetime of sessions.
type ManagerConfig struct {
	IdleTimeout   time.Duration
	SweepInterval time.Duration
	MaxSessions   int
}

// Manager tracks the active sessions.
type Manager struct {
	cfg     ManagerConfig
	emitter events.EventEmitter
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates a Manager. A nil emitter discards events.
func NewManager(cfg ManagerConfig, emitter events.EventEmitter, logger *slog.Logger) *Manager {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for session Manager")
	}
	if emitter == nil {
		emitter = events.NopEmitter{}
	}

	return &Manager{
		cfg:      cfg,
		emitter:  emitter,
		logger:   logger.With(slog.String("component", "session_manager")),
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// SetClock overrides time.Now for the manager and every session it creates
// afterwards. Intended for tests.
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Start creates and registers a new session.
// Returns ErrTooManySessions if the cap is reached.
func (m *Manager) Start(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	if m.cfg.MaxSessions > 0 && len(m.sessions) >= m.cfg.MaxSessions {
		m.mu.Unlock()
		m.logger.Warn("session limit reached", "max_sessions", m.cfg.MaxSessions)
		return nil, ErrTooManySessions
	}

	s := New(uuid.New(),
		WithEmitter(m.emitter),
		WithLogger(m.logger),
		WithClock(m.now))
	m.sessions[s.ID] = s
	count := len(m.sessions)
	m.mu.Unlock()

	m.logger.Info("session started",
		"session_id", s.ID.String(),
		"active_sessions", count)
	m.emitSessionEvent(ctx, events.TypeSessionStarted, s.ID)
	return s, nil
}

// Get returns the session with the given ID. A session that has been idle
// past the timeout is discarded and ErrSessionExpired is returned.
func (m *Manager) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	now := m.now
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if m.cfg.IdleTimeout > 0 && s.idleFor(now()) > m.cfg.IdleTimeout {
		m.remove(ctx, id, "expired")
		return nil, ErrSessionExpired
	}

	return s, nil
}

// End discards the session with the given ID.
func (m *Manager) End(ctx context.Context, id uuid.UUID) error {
	if !m.remove(ctx, id, "ended") {
		return ErrSessionNotFound
	}
	return nil
}

// Len returns the number of registered sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// SweepIdle discards every session idle past the timeout and returns how many
// were removed.
func (m *Manager) SweepIdle(ctx context.Context) int {
	if m.cfg.IdleTimeout <= 0 {
		return 0
	}

	m.mu.RLock()
	now := m.now()
	var expired []uuid.UUID
	for id, s := range m.sessions {
		if s.idleFor(now) > m.cfg.IdleTimeout {
			expired = append(expired, id)
		}
	}
	m.mu.RUnlock()

	removed := 0
	for _, id := range expired {
		if m.remove(ctx, id, "expired") {
			removed++
		}
	}

	if removed > 0 {
		m.logger.Info("swept idle sessions", "removed", removed, "active_sessions", m.Len())
	}
	return removed
}

// Run sweeps idle sessions every SweepInterval until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	interval := m.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.SweepIdle(ctx)
		}
	}
}

// Close discards every session.
func (m *Manager) Close(ctx context.Context) {
	m.mu.RLock()
	ids := make([]uuid.UUID, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	for _, id := range ids {
		m.remove(ctx, id, "shutdown")
	}
}

func (m *Manager) remove(ctx context.Context, id uuid.UUID, reason string) bool {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	count := len(m.sessions)
	m.mu.Unlock()

	if !ok {
		return false
	}

	m.logger.Info("session ended",
		"session_id", id.String(),
		"reason", reason,
		"active_sessions", count)
	m.emitSessionEvent(ctx, events.TypeSessionEnded, id)
	return true
}

func (m *Manager) emitSessionEvent(ctx context.Context, eventType events.EventType, id uuid.UUID) {
	m.mu.RLock()
	now := m.now
	m.mu.RUnlock()

	if err := m.emitter.EmitEvent(ctx, events.NewTaskEvent(eventType, id, now().UTC())); err != nil {
		m.logger.Warn("failed to emit session event",
			"error", err,
			"event_type", string(eventType),
			"session_id", id.String())
	}
}
