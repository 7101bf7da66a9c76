package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// ServiceInfo identifies the running service in the /health body.
type ServiceInfo struct {
	Name    string
	Version string
}

// HealthHandler handles the health HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	info     ServiceInfo
	now      func() time.Time
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry, info ServiceInfo) *HealthHandler {
	return &HealthHandler{registry: registry, info: info, now: time.Now}
}

// Health handles GET /health. Always returns 200 with the service identity.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusOK, dto.HealthResponse{
		Status:    statusOK,
		Service:   h.info.Name,
		Version:   h.info.Version,
		Timestamp: dto.FormatTimestamp(h.now()),
	})
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
		} else {
			checks[name] = statusOK
		}
	}

	resp := dto.HealthResponse{Status: statusReady, Checks: checks}
	code := http.StatusOK
	if !healthy {
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	dto.WriteJSON(w, r, code, resp)
}
