package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out cycle_service_mock_test.go -pkg rest . cycleService
//go:generate moq -out insight_service_mock_test.go -pkg rest . insightService
//go:generate moq -out user_service_mock_test.go -pkg rest . userService

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Fields  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	} `json:"error"`
}

type services struct {
	auth    *authServiceMock
	cycle   *cycleServiceMock
	insight *insightServiceMock
	user    *userServiceMock
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServices() *services {
	return &services{
		auth:    &authServiceMock{},
		cycle:   &cycleServiceMock{},
		insight: &insightServiceMock{},
		user:    &userServiceMock{},
	}
}

func (s *services) handlers() Handlers {
	log := discardLogger()
	return Handlers{
		Auth:    NewAuthHandler(s.auth, log),
		Cycle:   NewCycleHandler(s.cycle, log),
		Insight: NewInsightHandler(s.insight, log),
		User:    NewUserHandler(s.user, log),
		Health:  NewHealthHandler(&dbPingerMock{}, "test", clockwork.NewFakeClockAt(healthNow)),
	}
}

func (s *services) router() http.Handler {
	return NewRouter(s.handlers(), Middlewares{})
}

func do(t *testing.T, h http.Handler, method, target string, body any) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func decodeData(t *testing.T, env testEnvelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}
