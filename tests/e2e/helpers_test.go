//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/cycletrack-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/cycletrack-backend/internal/app"
	"github.com/heartmarshall/cycletrack-backend/internal/config"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL     string
	Client  *http.Client
	Pool    *pgxpool.Pool
	Clock   *clockwork.FakeClock
	Runtime *app.Runtime
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:          "e2e-secret-that-is-at-least-32-bytes-long",
			JWTIssuer:          "cycletrack-e2e",
			SessionTTL:         time.Hour,
			UserIDSalt:         "e2e-user-id-salt-16",
			PasswordSalt:       "e2e-password-salt-16",
			PasswordMinLength:  8,
			PublicPathsRaw:     "/api/v1/auth/,/live,/ready,/health",
			PersistentSessions: true,
		},
		Cycle: config.CycleConfig{
			StaleAfter:      7 * 24 * time.Hour,
			MaxFutureSkew:   24 * time.Hour,
			DefaultPageSize: 20,
			MinPageSize:     10,
			MaxPageSize:     100,
		},
		Predictor: config.PredictorConfig{
			Kind:              "statistical",
			Timeout:           5 * time.Second,
			MinRecords:        4,
			MinCycleLength:    21,
			MaxCycleLength:    45,
			MinPeriodDuration: 2,
			MaxPeriodDuration: 10,
			WindowDays:        7,
		},
		RateLimit: config.RateLimitConfig{
			IPPerMinute:     1000,
			CleanupInterval: time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type,X-Request-Id",
		},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and a fake clock set to now.
func setupTestServer(t *testing.T, now time.Time) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	clock := clockwork.NewFakeClockAt(now)
	cfg := testConfig()

	svcs, err := app.NewServices(pool, cfg, logger, clock)
	require.NoError(t, err)
	rt := &app.Runtime{Pool: pool, Services: *svcs, Clock: clock}

	handler, cleanup, err := app.NewHTTPHandler(context.Background(), cfg, rt, logger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:     srv.URL,
		Client:  srv.Client(),
		Pool:    pool,
		Clock:   clock,
		Runtime: rt,
	}
}

// do sends a JSON request and decodes the response envelope.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func decode(t *testing.T, env envelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

type authData struct {
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires_at"`
	UserIDHash string    `json:"user_id_hash"`
}

// signup registers a fresh user and returns its session.
func (ts *testServer) signup(t *testing.T) (authData, string) {
	t.Helper()

	email := "e2e-" + uuid.NewString() + "@example.com"
	status, env := ts.do(t, http.MethodPost, "/api/v1/auth/", "", map[string]any{
		"auth_type": "SIGNUP",
		"email":     email,
		"password":  "correct-horse",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)

	var data authData
	decode(t, env, &data)
	require.NotEmpty(t, data.Token)
	return data, email
}

type periodData struct {
	ID      string     `json:"period_record_id"`
	Status  string     `json:"current_status"`
	StartAt time.Time  `json:"start_datetime"`
	EndAt   *time.Time `json:"end_datetime"`
}

func (ts *testServer) event(t *testing.T, token, event string, at *time.Time) (int, envelope) {
	t.Helper()
	body := map[string]any{"event": event}
	if at != nil {
		body["date_time"] = at.Format(time.RFC3339)
	}
	return ts.do(t, http.MethodPost, "/api/v1/cycles/periods", token, body)
}

func ptr[T any](v T) *T { return &v }
