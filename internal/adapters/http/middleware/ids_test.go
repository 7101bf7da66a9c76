package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/middleware"
)

func captureIDs(t *testing.T, header http.Header) (reqID, corrID string, rec *httptest.ResponseRecorder) {
	t.Helper()

	handler := middleware.RequestID()(middleware.CorrelationID()(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			reqID = middleware.RequestIDFromContext(r.Context())
			corrID = middleware.CorrelationIDFromContext(r.Context())
		}),
	))

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", http.NoBody)
	for k, v := range header {
		req.Header[k] = v
	}
	handler.ServeHTTP(rec, req)
	return reqID, corrID, rec
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := captureIDs(t, http.Header{})

	parsed, err := uuid.Parse(reqID)
	if err != nil {
		t.Fatalf("request ID %q is not a UUID: %v", reqID, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("UUID version = %d, want 4", parsed.Version())
	}
	if got := rec.Header().Get("X-Request-ID"); got != reqID {
		t.Errorf("response X-Request-ID = %q, want %q", got, reqID)
	}
	if corrID != reqID {
		t.Errorf("correlation ID = %q, want fallback to request ID %q", corrID, reqID)
	}
}

func TestRequestID_ReusesIncomingHeaders(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := captureIDs(t, http.Header{
		"X-Request-Id":     {"edge-123"},
		"X-Correlation-Id": {"checkout_flow.7"},
	})

	if reqID != "edge-123" {
		t.Errorf("request ID = %q, want %q", reqID, "edge-123")
	}
	if corrID != "checkout_flow.7" {
		t.Errorf("correlation ID = %q, want %q", corrID, "checkout_flow.7")
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != "checkout_flow.7" {
		t.Errorf("response X-Correlation-ID = %q", got)
	}
}

func TestRequestID_ReplacesMalformedHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
	}{
		{"log injection", "abc\ninjected=1"},
		{"spaces", "a b"},
		{"too long", strings.Repeat("x", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reqID, _, _ := captureIDs(t, http.Header{"X-Request-Id": {tt.id}})
			if reqID == tt.id {
				t.Errorf("malformed ID %q was kept", tt.id)
			}
			if _, err := uuid.Parse(reqID); err != nil {
				t.Errorf("replacement %q is not a UUID", reqID)
			}
		})
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty", id)
	}
	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty", id)
	}
}
