package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

const probeTimeout = 3 * time.Second

// pinger defines the minimal interface for dependency health checks.
type pinger interface {
	Ping(ctx context.Context) error
}

type component struct {
	name     string
	check    pinger
	critical bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []component
	version    string
	clock      clockwork.Clock
}

// NewHealthHandler creates a HealthHandler. The database is critical:
// readiness fails while it is unreachable.
func NewHealthHandler(db pinger, version string, clock clockwork.Clock) *HealthHandler {
	return &HealthHandler{
		components: []component{{name: "database", check: db, critical: true}},
		version:    version,
		clock:      clock,
	}
}

// WithOptional adds a non-critical component. A failing optional component
// degrades /health but keeps /ready up.
func (h *HealthHandler) WithOptional(name string, p pinger) *HealthHandler {
	h.components = append(h.components, component{name: name, check: p})
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now().UTC(),
	})
}

// Ready is the readiness probe: 200 if every critical component answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	for _, c := range h.components {
		if !c.critical {
			continue
		}
		if err := c.check.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "down",
				Timestamp: h.clock.Now().UTC(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now().UTC(),
	})
}

// Health pings every component with latency measurement and includes version.
// Overall status is "down" if a critical component fails, "degraded" if only
// optional ones do.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.components))
	overall := "ok"

	for _, c := range h.components {
		start := time.Now()
		err := c.check.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components[c.name] = CompStatus{Status: "down"}
			switch {
			case c.critical:
				overall = "down"
			case overall == "ok":
				overall = "degraded"
			}
			continue
		}
		components[c.name] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.clock.Now().UTC(),
	})
}
