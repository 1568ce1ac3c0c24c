package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/middleware"
)

var startTime = time.Now()

// healthCheck is a single probe result.
type healthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Health handles GET /health. Unauthenticated callers get the status
// word only; admin sessions get check details and runtime info.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbCheck := h.checkDatabase()

	status := "healthy"
	code := http.StatusOK
	if dbCheck.Status != "healthy" {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	if !h.isAdminSession(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		writeRaw(w, map[string]any{"status": status})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	writeRaw(w, map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(startTime).Round(time.Second).String(),
		"checks": map[string]healthCheck{
			"database": dbCheck,
		},
		"system": map[string]any{
			"go_version":     runtime.Version(),
			"num_goroutines": runtime.NumGoroutine(),
			"num_cpus":       runtime.NumCPU(),
		},
	})
}

// Liveness handles GET /health/live.
func (h *Handler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	writeRaw(w, map[string]any{"status": "alive"})
}

// Readiness handles GET /health/ready.
func (h *Handler) Readiness(w http.ResponseWriter, _ *http.Request) {
	dbCheck := h.checkDatabase()

	w.Header().Set("Content-Type", "application/json")
	if dbCheck.Status == "healthy" {
		w.WriteHeader(http.StatusOK)
		writeRaw(w, map[string]any{"status": "ready"})
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	writeRaw(w, map[string]any{"status": "not_ready"})
}

func (h *Handler) checkDatabase() healthCheck {
	start := time.Now()
	err := h.db.Ping()
	latency := time.Since(start)

	if err != nil {
		return healthCheck{Status: "unhealthy", Message: err.Error(), Latency: latency.String()}
	}
	return healthCheck{Status: "healthy", Message: "Connected", Latency: latency.String()}
}

// isAdminSession reports whether the caller holds an admin panel session.
// SCS panics when session data is not loaded into the context, so the
// probe recovers instead of requiring the session middleware.
func (h *Handler) isAdminSession(r *http.Request) (admin bool) {
	defer func() {
		if rec := recover(); rec != nil {
			admin = false
		}
	}()
	sess, ok := middleware.AdminSessionFrom(r.Context(), h.sm)
	return ok && sess.IsAdmin()
}
