package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/moonhaus-contact-api/mocks"
)

var testInfo = handlers.ServiceInfo{Name: "Moonhaus Backend", Version: "1.0.0"}

// --- Health ---

func TestHealth_ReportsServiceIdentity(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry, testInfo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h.Health(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
	if resp["service"] != "Moonhaus Backend" || resp["version"] != "1.0.0" {
		t.Errorf("identity = %q/%q", resp["service"], resp["version"])
	}
	if resp["timestamp"] == "" {
		t.Error("timestamp missing")
	}
}

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry, testInfo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

// --- Readiness ---

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"crm": nil,
	})

	h := handlers.NewHealthHandler(registry, testInfo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "ready" {
		t.Errorf("status = %q, want %q", resp["status"], "ready")
	}
	checks, ok := resp["checks"].(map[string]any)
	if !ok {
		t.Fatal("checks field not a map")
	}
	if checks["crm"] != "ok" {
		t.Errorf("crm check = %v, want %q", checks["crm"], "ok")
	}
}

func TestReadiness_Unhealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"crm":   errors.New("connection refused"),
		"redis": nil,
	})

	h := handlers.NewHealthHandler(registry, testInfo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "not_ready" {
		t.Errorf("status = %q, want %q", resp["status"], "not_ready")
	}
	checks, ok := resp["checks"].(map[string]any)
	if !ok {
		t.Fatal("checks field not a map")
	}
	if checks["crm"] != "connection refused" {
		t.Errorf("crm check = %v, want %q", checks["crm"], "connection refused")
	}
	if checks["redis"] != "ok" {
		t.Errorf("redis check = %v, want %q", checks["redis"], "ok")
	}
}

func TestReadiness_NoCheckers(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	h := handlers.NewHealthHandler(registry, testInfo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
}
