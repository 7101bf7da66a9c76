// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import (
	"fmt"
	"net/netip"
	"strings"
	"time"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Mail      MailConfig      `koanf:"mail"`
	CRM       CRMConfig       `koanf:"crm"`
	Edge      EdgeConfig      `koanf:"edge"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// MetricsConfig controls the Prometheus scrape endpoint.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// MailConfig selects and configures the email transport.
type MailConfig struct {
	// Provider is one of smtp, sendgrid, ses or log.
	Provider     string         `koanf:"provider"`
	FromName     string         `koanf:"from_name"`
	FromAddress  string         `koanf:"from_address"`
	AdminAddress string         `koanf:"admin_address"`
	TimeZone     string         `koanf:"timezone"`
	SendTimeout  time.Duration  `koanf:"send_timeout"`
	SMTP         SMTPConfig     `koanf:"smtp"`
	SendGrid     SendGridConfig `koanf:"sendgrid"`
	SES          SESConfig      `koanf:"ses"`
}

// SMTPConfig holds SMTP relay credentials (e.g. a Gmail app password).
type SMTPConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// SendGridConfig holds SendGrid API credentials.
type SendGridConfig struct {
	APIKey string `koanf:"api_key"`
}

// SESConfig holds Amazon SES settings. Credentials come from the default
// AWS credential chain.
type SESConfig struct {
	Region string `koanf:"region"`
}

// CRMConfig holds the CRM integration settings. An empty AccessToken
// disables the integration.
type CRMConfig struct {
	AccessToken string `koanf:"access_token"`
	// UpsertTimeout bounds the create/search/update/note chain of one
	// submission. Keep it below server.request_timeout.
	UpsertTimeout time.Duration `koanf:"upsert_timeout"`
	Client        ClientConfig  `koanf:"client"`
	Tags          LeadTags      `koanf:"tags"`
}

// Enabled reports whether a CRM access token is configured.
func (c CRMConfig) Enabled() bool {
	return c.AccessToken != ""
}

// LeadTags are the attribution values stamped on new leads.
type LeadTags struct {
	LeadSource         string `koanf:"lead_source"`
	LeadSourceDetail   string `koanf:"lead_source_detail"`
	InterestType       string `koanf:"interest_type"`
	LocationPreference string `koanf:"location_preference"`
	ContactReason      string `koanf:"contact_reason"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      ClientRateLimit      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// ClientRateLimit throttles outbound calls. Zero RequestsPerSecond disables it.
type ClientRateLimit struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// EdgeConfig holds request-level protections.
type EdgeConfig struct {
	CORS      CORSConfig      `koanf:"cors"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	// HSTS adds Strict-Transport-Security. Enable only behind TLS.
	HSTS bool `koanf:"hsts"`
	// TrustedProxies lists the peers (IPs or CIDRs) whose X-Forwarded-For
	// and X-Real-IP headers are believed. Empty means clients are keyed on
	// the socket address.
	TrustedProxies []string `koanf:"trusted_proxies"`
}

// TrustedProxyPrefixes parses TrustedProxies. A bare address is a
// single-host prefix.
func (e EdgeConfig) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(e.TrustedProxies))
	for _, raw := range e.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("edge.trusted_proxies: %w", err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("edge.trusted_proxies: %w", err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string      `koanf:"allowed_origins"`
	MaxAge         time.Duration `koanf:"max_age"`
}

// RateLimitConfig limits contact submissions per client IP.
type RateLimitConfig struct {
	Enabled     bool          `koanf:"enabled"`
	MaxRequests int           `koanf:"max_requests"`
	Window      time.Duration `koanf:"window"`
	// Backend is memory or redis.
	Backend  string `koanf:"backend"`
	RedisURL string `koanf:"redis_url"`
}
