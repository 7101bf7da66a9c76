package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/logging"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/metrics"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// RateLimit rejects requests from a client IP once limiter denies them,
// answering 429 with a Retry-After header. Every response carries the
// RateLimit-Limit, RateLimit-Remaining and RateLimit-Reset headers. Limiter
// errors are logged and the request is let through.
//
// window is only used for the human readable retryAfter field of the body.
func RateLimit(limiter ports.RateLimiter, window time.Duration, m *metrics.Metrics, route string) func(http.Handler) http.Handler {
	retryAfterText := humanizeWindow(window)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ip := remoteHost(r)

			decision, err := limiter.Allow(ctx, ip)
			if err != nil {
				logging.FromContext(ctx).WarnContext(ctx, "rate limiter unavailable, allowing request",
					slog.String("client_ip", ip),
					slog.Any("error", err),
				)
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("RateLimit-Limit", strconv.Itoa(decision.Limit))
			h.Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			h.Set("RateLimit-Reset", strconv.Itoa(ceilSeconds(decision.RetryAfter)))

			if decision.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			m.ObserveRateLimited(route)
			logging.FromContext(ctx).WarnContext(ctx, "rate limit exceeded",
				slog.String("client_ip", ip),
				slog.Int("limit", decision.Limit),
				slog.Duration("retry_after", decision.RetryAfter),
			)

			h.Set("Retry-After", strconv.Itoa(max(ceilSeconds(decision.RetryAfter), 1)))
			dto.WriteJSON(w, r, http.StatusTooManyRequests, dto.RateLimitResponse{
				Error:      dto.MsgTooMany,
				RetryAfter: retryAfterText,
			})
		})
	}
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}

// humanizeWindow renders d in Spanish using its largest whole unit,
// e.g. "15 minutos" or "1 hora".
func humanizeWindow(d time.Duration) string {
	type unit struct {
		size             time.Duration
		singular, plural string
	}
	units := []unit{
		{time.Hour, "hora", "horas"},
		{time.Minute, "minuto", "minutos"},
		{time.Second, "segundo", "segundos"},
	}
	for _, u := range units {
		if d >= u.size && d%u.size == 0 {
			n := int64(d / u.size)
			if n == 1 {
				return "1 " + u.singular
			}
			return fmt.Sprintf("%d %s", n, u.plural)
		}
	}
	return fmt.Sprintf("%d segundos", max(ceilSeconds(d), 1))
}
