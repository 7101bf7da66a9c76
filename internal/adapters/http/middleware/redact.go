package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveHeaders are lowercase header names whose values never reach logs.
var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// RedactHeaders returns one slog.Attr per header, sorted by name, with
// credentials replaced by "[REDACTED]". Multi-value headers are joined with
// a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		v := strings.Join(headers[k], ",")
		if sensitiveHeaders[strings.ToLower(k)] {
			v = redacted
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return attrs
}
