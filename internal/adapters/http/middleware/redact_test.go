package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"Authorization": {"Bearer pat-eu1-secret"},
		"Cookie":        {"session=abc"},
		"X-Api-Key":     {"SG.key"},
		"Content-Type":  {"application/json"},
		"Accept":        {"text/html", "application/json"},
	}

	attrs := middleware.RedactHeaders(headers)

	want := []struct{ key, value string }{
		{"Accept", "text/html,application/json"},
		{"Authorization", "[REDACTED]"},
		{"Content-Type", "application/json"},
		{"Cookie", "[REDACTED]"},
		{"X-Api-Key", "[REDACTED]"},
	}
	if len(attrs) != len(want) {
		t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(want))
	}
	for i, w := range want {
		if attrs[i].Key != w.key {
			t.Errorf("attrs[%d].Key = %q, want %q", i, attrs[i].Key, w.key)
		}
		if got := attrs[i].Value.String(); got != w.value {
			t.Errorf("attrs[%d] %s = %q, want %q", i, w.key, got, w.value)
		}
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("len(attrs) = %d, want 0", len(attrs))
	}
}
