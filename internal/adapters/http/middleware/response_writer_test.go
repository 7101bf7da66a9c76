package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_DefaultStatus(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	if rw.statusCode != http.StatusOK {
		t.Errorf("default statusCode = %d, want %d", rw.statusCode, http.StatusOK)
	}
}

func TestResponseWriter_FirstWriteHeaderWins(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusTooManyRequests)
	rw.WriteHeader(http.StatusOK)

	if rw.statusCode != http.StatusTooManyRequests {
		t.Errorf("statusCode = %d, want %d", rw.statusCode, http.StatusTooManyRequests)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("recorder Code = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
}

func TestResponseWriter_CountsBytes(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	_, _ = rw.Write([]byte(`{"success":`))
	_, _ = rw.Write([]byte(`true}`))

	if rw.written != 16 {
		t.Errorf("written = %d, want 16", rw.written)
	}
	if !rw.headerWritten {
		t.Error("headerWritten = false after Write, want true")
	}
}

func TestResponseWriter_ReusesExistingWrapper(t *testing.T) {
	t.Parallel()

	outer := newResponseWriter(httptest.NewRecorder())
	if inner := newResponseWriter(outer); inner != outer {
		t.Error("newResponseWriter wrapped an existing responseWriter again")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if newResponseWriter(rec).Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
