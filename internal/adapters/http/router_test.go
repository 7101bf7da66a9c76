package http_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/ratelimit"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/contact"
	"github.com/jsamuelsen11/moonhaus-contact-api/mocks"
)

type testRouter struct {
	handler  http.Handler
	svc      *mocks.MockContactService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, contactMW ...func(http.Handler) http.Handler) testRouter {
	t.Helper()
	return newProxiedTestRouter(t, nil, contactMW...)
}

// newProxiedTestRouter believes forwarded headers only from trusted peers.
func newProxiedTestRouter(t *testing.T, trusted []netip.Prefix, contactMW ...func(http.Handler) http.Handler) testRouter {
	t.Helper()
	svc := mocks.NewMockContactService(t)
	registry := mocks.NewMockHealthRegistry(t)

	routes := adapthttp.Routes{
		Contact:           handlers.NewContactHandler(svc, 0),
		Health:            handlers.NewHealthHandler(registry, handlers.ServiceInfo{Name: "Moonhaus Backend", Version: "test"}),
		ContactMiddleware: contactMW,
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		}),
		MetricsPath: "/metrics",
	}

	return testRouter{
		handler:  adapthttp.NewRouter(routes, middleware.RealIP(trusted)),
		svc:      svc,
		registry: registry,
	}
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	chiRouter, ok := tr.handler.(*chi.Mux)
	require.True(t, ok, "router is not *chi.Mux")

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+strings.TrimSuffix(route, "/")] = true
		return nil
	})
	require.NoError(t, err)

	for _, key := range []string{
		"GET /health",
		"GET /health/live",
		"GET /health/ready",
		"GET /metrics",
		"POST /api/contact",
		"GET /api/contact/test",
	} {
		assert.True(t, registered[key], "route %s not registered", key)
	}
}

func TestRouter_SubmitContact(t *testing.T) {
	t.Parallel()

	tr := newProxiedTestRouter(t, []netip.Prefix{netip.MustParsePrefix("192.0.2.0/24")})
	tr.svc.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(in contact.Input) bool {
		return in.IP == "198.51.100.20"
	})).Return(&contact.Receipt{Message: "¡Gracias!", Timestamp: time.Now()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ana Pérez","email":"ana@test.com","phone":"+34600112233","message":"Quiero más información"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "198.51.100.20")
	req.RemoteAddr = "192.0.2.10:5000"

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestRouter_ContactMiddlewareScopedToContactRoutes(t *testing.T) {
	t.Parallel()

	var hits []string
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits = append(hits, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	tr := newTestRouter(t, tag)
	tr.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})
	tr.svc.EXPECT().Status(mock.Anything).Return(mocksStatus())

	for _, path := range []string{"/health/ready", "/api/contact/test"} {
		rec := httptest.NewRecorder()
		tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	assert.Equal(t, []string{"/api/contact/test"}, hits)
}

func TestRouter_RateLimitsContactSubmissions(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.NewMemory(2, 15*time.Minute)
	tr := newTestRouter(t, middleware.RateLimit(limiter, 15*time.Minute, nil, "/api/contact"))
	tr.svc.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(&contact.Receipt{Message: "ok", Timestamp: time.Now()}, nil).Times(2)

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
		req.RemoteAddr = "203.0.113.50:1234"
		rec := httptest.NewRecorder()
		tr.handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests {
			assert.Contains(t, rec.Body.String(), `"retryAfter":"15 minutos"`)
			assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_RateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.NewMemory(5, 15*time.Minute)
	tr := newTestRouter(t, middleware.RateLimit(limiter, 15*time.Minute, nil, "/api/contact"))
	tr.svc.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(&contact.Receipt{Message: "ok", Timestamp: time.Now()}, nil).Times(5)

	accepted := 0
	for i := range 50 {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
		req.RemoteAddr = "203.0.113.50:1234"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("192.0.2.%d", i))
		rec := httptest.NewRecorder()
		tr.handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			accepted++
		}
	}

	assert.Equal(t, 5, accepted)
}

func TestRouter_RateLimitKeysOnClientBehindTrustedProxy(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.NewMemory(1, 15*time.Minute)
	tr := newProxiedTestRouter(t, []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")},
		middleware.RateLimit(limiter, 15*time.Minute, nil, "/api/contact"))
	tr.svc.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(&contact.Receipt{Message: "ok", Timestamp: time.Now()}, nil).Times(2)

	send := func(client string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
		req.RemoteAddr = "10.0.0.5:4000"
		req.Header.Set("X-Forwarded-For", client)
		rec := httptest.NewRecorder()
		tr.handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("198.51.100.1"))
	assert.Equal(t, http.StatusOK, send("198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1"))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())
}

func TestRouter_NotFoundReturnsJSON(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Ruta no encontrada - /api/unknown","timestamp":"`+
		extractTimestamp(t, rec.Body.String())+`"}`, rec.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "Método no permitido")
}
