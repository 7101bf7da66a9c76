package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
)

// Timeout bounds request handling to timeout. The handler runs with a
// deadline-carrying context in its own goroutine and writes into a buffer.
// When the deadline passes first, a JSON 503 is sent and whatever the
// handler writes afterwards is discarded. A non-positive timeout disables
// the middleware.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutWriter{w: w, header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flush()
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", timeout, domain.ErrUnavailable))
			}
		})
	}
}

// timeoutWriter buffers the handler's response. Every method holds mu so the
// handler goroutine and the timeout path never write concurrently.
type timeoutWriter struct {
	w          http.ResponseWriter
	mu         sync.Mutex
	header     http.Header
	buf        []byte
	statusCode int
	timedOut   bool
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if tw.statusCode == 0 {
		tw.statusCode = http.StatusOK
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.statusCode != 0 {
		return
	}
	tw.statusCode = code
}

// flush copies the buffered response to the real writer. Caller holds mu.
func (tw *timeoutWriter) flush() {
	maps.Copy(tw.w.Header(), tw.header)
	if tw.statusCode != 0 {
		tw.w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
	}
}
