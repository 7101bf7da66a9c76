package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/dto"
)

var errPanic = errors.New("handler panicked")

// Recovery turns a panic in a downstream handler into a logged error and a
// JSON 500 response. Nothing is written when the handler had already started
// the response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
