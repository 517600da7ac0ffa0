package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, now: time.Now}
}

// HealthResponse is the JSON response for /live, /ready and /health.
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
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready is the readiness probe: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	writeJSON(w, statusCode(db), HealthResponse{Status: db.Status, Timestamp: h.now()})
}

// Health reports every component with latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	writeJSON(w, statusCode(db), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(c CompStatus) int {
	if c.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
