package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
)

// CORS allows browser calls from the listed origins with credentials.
func CORS(allowedOrigins []string, maxAge time.Duration) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", headerRequestID, headerCorrelationID},
		ExposedHeaders:   []string{headerRequestID, "Retry-After", "RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           int(maxAge.Seconds()),
	})
}
