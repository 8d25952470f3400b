package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, cfg ManagerConfig) (*Manager, *fakeClock, *recordingEmitter) {
	t.Helper()
	clock := newFakeClock()
	emitter := &recordingEmitter{}
	m := NewManager(cfg, emitter, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.SetClock(clock.Now)
	return m, clock, emitter
}

func TestNewManagerPanicsWithoutLogger(t *testing.T) {
	assert.Panics(t, func() {
		NewManager(ManagerConfig{}, nil, nil)
	})
}

func TestManagerStartGetEnd(t *testing.T) {
	m, _, emitter := newTestManager(t, ManagerConfig{IdleTimeout: time.Hour, MaxSessions: 10})
	ctx := context.Background()

	s, err := m.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, m.End(ctx, s.ID))
	assert.Equal(t, 0, m.Len())

	_, err = m.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, m.End(ctx, s.ID), ErrSessionNotFound)

	assert.Equal(t, []events.EventType{events.TypeSessionStarted, events.TypeSessionEnded}, emitter.types())
}

func TestManagerSessionsAreIndependent(t *testing.T) {
	m, _, _ := newTestManager(t, ManagerConfig{})
	ctx := context.Background()

	a, err := m.Start(ctx)
	require.NoError(t, err)
	b, err := m.Start(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	_, err = a.AddTask(ctx, "only in a", domain.PriorityHigh)
	require.NoError(t, err)

	assert.Equal(t, 1, a.Stats().Pending)
	assert.Equal(t, 0, b.Stats().Pending)
}

func TestManagerMaxSessions(t *testing.T) {
	m, _, _ := newTestManager(t, ManagerConfig{MaxSessions: 2})
	ctx := context.Background()

	_, err := m.Start(ctx)
	require.NoError(t, err)
	_, err = m.Start(ctx)
	require.NoError(t, err)

	_, err = m.Start(ctx)
	assert.ErrorIs(t, err, ErrTooManySessions)
	assert.Equal(t, 2, m.Len())
}

func TestManagerGetExpiresIdleSession(t *testing.T) {
	m, clock, _ := newTestManager(t, ManagerConfig{IdleTimeout: 10 * time.Minute})
	ctx := context.Background()

	s, err := m.Start(ctx)
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	_, err = m.Get(ctx, s.ID)
	require.NoError(t, err)

	clock.Advance(11 * time.Minute)
	_, err = m.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, 0, m.Len())
}

func TestManagerActivityKeepsSessionAlive(t *testing.T) {
	m, clock, _ := newTestManager(t, ManagerConfig{IdleTimeout: 10 * time.Minute})
	ctx := context.Background()

	s, err := m.Start(ctx)
	require.NoError(t, err)

	clock.Advance(8 * time.Minute)
	_, err = s.AddTask(ctx, "keep alive", domain.PriorityLow)
	require.NoError(t, err)

	clock.Advance(8 * time.Minute)
	_, err = m.Get(ctx, s.ID)
	assert.NoError(t, err)
}

func TestManagerSweepIdle(t *testing.T) {
	m, clock, _ := newTestManager(t, ManagerConfig{IdleTimeout: 10 * time.Minute})
	ctx := context.Background()

	stale, err := m.Start(ctx)
	require.NoError(t, err)
	clock.Advance(9 * time.Minute)
	fresh, err := m.Start(ctx)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	removed := m.SweepIdle(ctx)

	assert.Equal(t, 1, removed)
	_, err = m.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestManagerRunStopsOnCancel(t *testing.T) {
	m, _, _ := newTestManager(t, ManagerConfig{IdleTimeout: time.Minute, SweepInterval: time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestManagerClose(t *testing.T) {
	m, _, _ := newTestManager(t, ManagerConfig{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := m.Start(ctx)
		require.NoError(t, err)
	}

	m.Close(ctx)
	assert.Equal(t, 0, m.Len())

	_, err := m.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
