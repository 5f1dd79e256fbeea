package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	Version string
	started time.Time
}

// NewHealthHandler returns a HealthHandler reporting version, with uptime counted from now.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{Version: version, started: time.Now()}
}

// LivenessResponse represents liveness probe response.
type LivenessResponse struct {
	Status string `json:"status"`
	Time   int64  `json:"timestamp"`
}

// Liveness returns 200 if the service is running.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LivenessResponse{
		Status: "alive",
		Time:   time.Now().Unix(),
	})
}

// Status returns detailed status information.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	status := map[string]interface{}{
		"service":   "timewrap-demo",
		"version":   h.Version,
		"timestamp": time.Now().Unix(),
		"uptime":    time.Since(h.started).Seconds(),
	}
	json.NewEncoder(w).Encode(status)
}
