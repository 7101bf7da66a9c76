package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of HTTP header names (lowercase) that carry
// credentials. The HTTP middleware's RedactHeaders uses the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// sensitiveFields are attribute keys whose values never reach the log.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"access_token",
	"phone",
}

var (
	// "Bearer <token>" appearing as a raw value.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// JWTs; at least 10 characters per segment so version strings survive.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// HubSpot private app tokens (pat-<region>-<uuid>).
	hubspotTokenPattern = regexp.MustCompile(`pat-[a-z]{2,3}\d?-[0-9a-fA-F\-]{20,}`)

	// SendGrid API keys.
	sendgridKeyPattern = regexp.MustCompile(`SG\.[A-Za-z0-9_\-]{16,}\.[A-Za-z0-9_\-]{16,}`)

	// Inline "api_key=<value>" or "apikey:<value>".
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newRedactAttr returns a masq ReplaceAttr function that redacts by field
// name for known sensitive keys and by pattern for credentials that slip
// into free-form values.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+7)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(hubspotTokenPattern),
		masq.WithRegex(sendgridKeyPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
