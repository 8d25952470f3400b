package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/tasktrack/internal/api"
	"github.com/phrazzld/tasktrack/internal/config"
	"github.com/phrazzld/tasktrack/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   0,
			LogLevel:               "debug",
			ShutdownTimeoutSeconds: 1,
		},
		Session: config.SessionConfig{
			TokenSecret:          "test-secret-that-is-at-least-32-characters",
			TokenLifetimeMinutes: 60,
			IdleTimeoutMinutes:   30,
			SweepIntervalSeconds: 60,
			MaxSessions:          2,
		},
	}
}

func newTestApp(t *testing.T) *application {
	t.Helper()
	log, _ := logger.NewTestLogger(t)
	app, err := newApplication(testConfig(), log)
	require.NoError(t, err)
	return app
}

type client struct {
	t      *testing.T
	router http.Handler
	token  string
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func startSession(t *testing.T, router http.Handler) *client {
	t.Helper()
	c := &client{t: t, router: router}
	w := c.do(http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp api.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	c.token = resp.Token
	return c
}

func TestNewApplicationRejectsShortSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Session.TokenSecret = "short"
	log, _ := logger.NewTestLogger(t)

	_, err := newApplication(cfg, log)
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)
	w := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	c := startSession(t, app.setupRouter())

	for _, req := range []api.CreateTaskRequest{
		{Name: "A", Priority: 3},
		{Name: "B", Priority: 1},
		{Name: "C", Priority: 2},
	} {
		w := c.do(http.MethodPost, "/api/tasks", req)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	var order []string
	for i := 0; i < 3; i++ {
		w := c.do(http.MethodPost, "/api/tasks/complete", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var task api.TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
		order = append(order, task.Name)
	}
	assert.Equal(t, []string{"B", "C", "A"}, order)

	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/tasks/complete", nil).Code)
	assert.Equal(t, http.StatusNoContent, c.do(http.MethodGet, "/api/tasks/next", nil).Code)

	w := c.do(http.MethodPost, "/api/completed/undo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reopened api.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reopened))
	assert.Equal(t, "A", reopened.Name)

	var stats api.StatsResponse
	require.NoError(t, json.Unmarshal(c.do(http.MethodGet, "/api/stats", nil).Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.Completed)
}

func TestSessionsAreIsolated(t *testing.T) {
	app := newTestApp(t)
	router := app.setupRouter()
	first := startSession(t, router)
	second := startSession(t, router)

	require.Equal(t, http.StatusCreated,
		first.do(http.MethodPost, "/api/tasks", api.CreateTaskRequest{Name: "mine", Priority: 1}).Code)

	var list api.TaskListResponse
	require.NoError(t, json.Unmarshal(second.do(http.MethodGet, "/api/tasks", nil).Body.Bytes(), &list))
	assert.Equal(t, 0, list.Count)

	// MaxSessions is 2 in the test config.
	third := &client{t: t, router: router}
	assert.Equal(t, http.StatusServiceUnavailable, third.do(http.MethodPost, "/api/sessions", nil).Code)
}

func TestEndSessionInvalidatesToken(t *testing.T) {
	app := newTestApp(t)
	c := startSession(t, app.setupRouter())

	assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, "/api/session", nil).Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/tasks", nil).Code)
	assert.Equal(t, 0, app.sessions.Len())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)
	c := &client{t: t, router: app.setupRouter()}

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/tasks"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodGet, "/api/tasks/next"},
		{http.MethodPost, "/api/tasks/complete"},
		{http.MethodGet, "/api/completed"},
		{http.MethodPost, "/api/completed/undo"},
		{http.MethodGet, "/api/stats"},
		{http.MethodDelete, "/api/session"},
	} {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, c.do(route.method, route.path, nil).Code)
		})
	}

	c.token = "not-a-jwt"
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/tasks", nil).Code)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	app := newTestApp(t)
	_, err := app.sessions.Start(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
	assert.Equal(t, 0, app.sessions.Len(), "sessions should be ended on shutdown")
}
