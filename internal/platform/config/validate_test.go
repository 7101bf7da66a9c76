package config_test

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/config"
)

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           3001,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 25 * time.Second,
			MaxBodyBytes:   1 << 20,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Mail: config.MailConfig{
			Provider:     "smtp",
			FromName:     "Moonhaus Valencia",
			FromAddress:  "hola@moonhaus.es",
			AdminAddress: "admin@moonhaus.es",
			TimeZone:     "Europe/Madrid",
			SendTimeout:  15 * time.Second,
			SMTP: config.SMTPConfig{
				Host:     "smtp.gmail.com",
				Port:     465,
				Username: "hola@moonhaus.es",
				Password: "app-password",
			},
		},
		CRM: config.CRMConfig{
			AccessToken:   "pat-eu1-test",
			UpsertTimeout: 8 * time.Second,
			Client: config.ClientConfig{
				BaseURL: "https://api.hubapi.com",
				Timeout: 10 * time.Second,
				Retry: config.RetryConfig{
					MaxAttempts:     3,
					InitialInterval: 200 * time.Millisecond,
					MaxInterval:     2 * time.Second,
					Multiplier:      2.0,
				},
				CircuitBreaker: config.CircuitBreakerConfig{
					MaxFailures:   5,
					Timeout:       30 * time.Second,
					HalfOpenLimit: 1,
				},
			},
		},
		Edge: config.EdgeConfig{
			CORS: config.CORSConfig{AllowedOrigins: []string{"https://moonhaus.es"}},
			RateLimit: config.RateLimitConfig{
				Enabled:     true,
				MaxRequests: 5,
				Window:      15 * time.Minute,
				Backend:     "memory",
			},
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	require.NoError(t, validBaseConfig().Validate())
}

func TestValidate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
		want   string
	}{
		{"port zero", func(c *config.Config) { c.Server.Port = 0 }, "server.port"},
		{"no body cap", func(c *config.Config) { c.Server.MaxBodyBytes = 0 }, "server.max_body_bytes"},
		{"log level", func(c *config.Config) { c.Log.Level = "verbose" }, "log.level"},
		{"otlp without endpoint", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
		}, "telemetry.endpoint"},
		{"metrics path", func(c *config.Config) { c.Metrics.Path = "metrics" }, "metrics.path"},
		{"unknown mail provider", func(c *config.Config) { c.Mail.Provider = "pigeon" }, "mail.provider"},
		{"smtp without password", func(c *config.Config) { c.Mail.SMTP.Password = "" }, "mail.smtp.password"},
		{"sendgrid without key", func(c *config.Config) { c.Mail.Provider = "sendgrid" }, "mail.sendgrid.api_key"},
		{"ses without region", func(c *config.Config) { c.Mail.Provider = "ses" }, "mail.ses.region"},
		{"bad from address", func(c *config.Config) { c.Mail.FromAddress = "not an address" }, "mail.from_address"},
		{"missing admin address", func(c *config.Config) { c.Mail.AdminAddress = "" }, "mail.admin_address"},
		{"crm retries", func(c *config.Config) { c.CRM.Client.Retry.MaxAttempts = 0 }, "crm.client.retry.max_attempts"},
		{"crm upsert without budget", func(c *config.Config) { c.CRM.UpsertTimeout = 0 }, "crm.upsert_timeout"},
		{"crm budget above request timeout", func(c *config.Config) { c.CRM.UpsertTimeout = 30 * time.Second }, "crm.upsert_timeout"},
		{"mail budget above request timeout", func(c *config.Config) { c.Mail.SendTimeout = 25 * time.Second }, "mail.send_timeout"},
		{"bad trusted proxy", func(c *config.Config) { c.Edge.TrustedProxies = []string{"lb.internal"} }, "edge.trusted_proxies"},
		{"crm rate limit burst", func(c *config.Config) {
			c.CRM.Client.RateLimit = config.ClientRateLimit{RequestsPerSecond: 5}
		}, "crm.client.rate_limit.burst_size"},
		{"wildcard origin", func(c *config.Config) { c.Edge.CORS.AllowedOrigins = []string{"*"} }, "edge.cors.allowed_origins"},
		{"rate limit window", func(c *config.Config) { c.Edge.RateLimit.Window = 0 }, "edge.rate_limit.window"},
		{"redis without url", func(c *config.Config) { c.Edge.RateLimit.Backend = "redis" }, "edge.rate_limit.redis_url"},
		{"unknown backend", func(c *config.Config) { c.Edge.RateLimit.Backend = "memcached" }, "edge.rate_limit.backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEdgeConfig_TrustedProxyPrefixes(t *testing.T) {
	t.Parallel()

	edge := config.EdgeConfig{TrustedProxies: []string{"10.1.2.3/8", " 192.0.2.1 ", "::ffff:198.51.100.7", "2001:db8::/32"}}

	got, err := edge.TrustedProxyPrefixes()
	require.NoError(t, err)
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.0.2.1/32"),
		netip.MustParsePrefix("198.51.100.7/32"),
		netip.MustParsePrefix("2001:db8::/32"),
	}, got)

	empty, err := config.EdgeConfig{}.TrustedProxyPrefixes()
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestValidate_CRMDisabledSkipsClientChecks(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.CRM.AccessToken = ""
	cfg.CRM.Client = config.ClientConfig{}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_LogProviderNeedsNoAddresses(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Mail.Provider = "log"
	cfg.Mail.FromAddress = ""
	cfg.Mail.AdminAddress = ""

	assert.NoError(t, cfg.Validate())
}

func TestValidate_AggregatesErrors(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = -1
	cfg.Log.Format = "xml"
	cfg.Edge.RateLimit.MaxRequests = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"server.port", "log.format", "edge.rate_limit.max_requests"} {
		assert.Contains(t, err.Error(), key)
	}
}
