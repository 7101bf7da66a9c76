package config

const (
	defaultServerPort   = 3001
	defaultMaxBodyBytes = 1 << 20

	defaultSMTPPort = 465

	// CRM writes are not idempotent, so the client does not retry by default.
	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultCRMRequestsPerSecond = 10
	defaultCRMBurst             = 10

	defaultRateLimitMax = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
// Every key that may be overridden from the environment must appear here so
// that buildEnvLookup can resolve it.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "25s",
		"server.shutdown_timeout": "15s",
		"server.max_body_bytes":   defaultMaxBodyBytes,

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "moonhaus-contact-api",

		"metrics.enabled": true,
		"metrics.path":    "/metrics",

		"mail.provider":         "log",
		"mail.from_name":        "Moonhaus Valencia",
		"mail.from_address":     "",
		"mail.admin_address":    "",
		"mail.timezone":         "Europe/Madrid",
		"mail.send_timeout":     "15s",
		"mail.smtp.host":        "smtp.gmail.com",
		"mail.smtp.port":        defaultSMTPPort,
		"mail.smtp.username":    "",
		"mail.smtp.password":    "",
		"mail.sendgrid.api_key": "",
		"mail.ses.region":       "eu-west-1",

		"crm.access_token":                           "",
		"crm.upsert_timeout":                         "8s",
		"crm.client.base_url":                        "https://api.hubapi.com",
		"crm.client.timeout":                         "5s",
		"crm.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"crm.client.retry.initial_interval":          "200ms",
		"crm.client.retry.max_interval":              "2s",
		"crm.client.retry.multiplier":                defaultRetryMultiplier,
		"crm.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"crm.client.circuit_breaker.timeout":         "30s",
		"crm.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"crm.client.rate_limit.requests_per_second":  defaultCRMRequestsPerSecond,
		"crm.client.rate_limit.burst_size":           defaultCRMBurst,
		"crm.tags.lead_source":                       "Website Contact Form",
		"crm.tags.lead_source_detail":                "moonhaus.es/contact",
		"crm.tags.interest_type":                     "Coworking Space",
		"crm.tags.location_preference":               "Valencia - Ruzafa",
		"crm.tags.contact_reason":                    "Information Request",

		"edge.cors.allowed_origins":    []string{"http://localhost:5173", "https://moonhaus.es", "https://www.moonhaus.es"},
		"edge.cors.max_age":            "10m",
		"edge.hsts":                    false,
		"edge.trusted_proxies":         []string{},
		"edge.rate_limit.enabled":      true,
		"edge.rate_limit.max_requests": defaultRateLimitMax,
		"edge.rate_limit.window":       "15m",
		"edge.rate_limit.backend":      "memory",
		"edge.rate_limit.redis_url":    "",
	}
}
