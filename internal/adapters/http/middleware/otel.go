package middleware

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/middleware"

// OpenTelemetry starts a server span per request, continuing any W3C trace
// context found in the headers, and records the server request metrics. The
// span is renamed to the matched route once the handler returns so that
// cardinality stays bounded. A nil metrics skips recording.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.GetTracerProvider().Tracer(tracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					attribute.String("url.path", r.URL.Path),
					attribute.String("user_agent.original", r.UserAgent()),
				),
			)
			defer span.End()

			rw := newResponseWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			route := routePattern(r)
			if route == "" {
				route = "unmatched"
			}
			status := rw.statusCode

			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				telemetry.AttrHTTPRoute.String(route),
				telemetry.AttrHTTPStatus.Int(status),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			recordServerMetrics(ctx, metrics, r.Method, route, start, status)
		})
	}
}

func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, start time.Time, status int) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
