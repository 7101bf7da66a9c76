package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
)

// DefaultMaxBodyBytes is the request body limit used when none is configured (1 MiB).
const DefaultMaxBodyBytes int64 = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to limit bytes. On failure, it writes a 400 error response and
// returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any, limit int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		msg := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "request body too large"
		}
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", msg))
		return false
	}
	return true
}

// clientIP returns the host part of r.RemoteAddr. The RealIP middleware has
// already replaced RemoteAddr with the forwarded address when one is present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
