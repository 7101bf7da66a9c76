package config

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Metrics.validate(),
		c.Mail.validate(),
		c.CRM.validate(),
		c.Edge.validate(),
		c.validateBudgets(),
	)
}

// validateBudgets keeps the per-dependency deadlines inside the request
// timeout so a slow dependency cannot turn into a 503.
func (c *Config) validateBudgets() error {
	if c.Server.RequestTimeout <= 0 {
		return nil
	}

	var errs []error
	if c.Mail.SendTimeout >= c.Server.RequestTimeout {
		errs = append(errs, fmt.Errorf("mail.send_timeout (%s) must be below server.request_timeout (%s)",
			c.Mail.SendTimeout, c.Server.RequestTimeout))
	}
	if c.CRM.Enabled() && c.CRM.UpsertTimeout >= c.Server.RequestTimeout {
		errs = append(errs, fmt.Errorf("crm.upsert_timeout (%s) must be below server.request_timeout (%s)",
			c.CRM.UpsertTimeout, c.Server.RequestTimeout))
	}
	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if s.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be positive, got %d", s.MaxBodyBytes))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (m *MetricsConfig) validate() error {
	if m.Enabled && !strings.HasPrefix(m.Path, "/") {
		return fmt.Errorf("metrics.path must start with /, got %q", m.Path)
	}
	return nil
}

func (m *MailConfig) validate() error {
	var errs []error

	switch m.Provider {
	case "smtp":
		if m.SMTP.Host == "" {
			errs = append(errs, errors.New("mail.smtp.host must not be empty for the smtp provider"))
		}
		if m.SMTP.Port < 1 || m.SMTP.Port > 65535 {
			errs = append(errs, fmt.Errorf("mail.smtp.port must be between 1 and 65535, got %d", m.SMTP.Port))
		}
		if m.SMTP.Username == "" || m.SMTP.Password == "" {
			errs = append(errs, errors.New("mail.smtp.username and mail.smtp.password are required for the smtp provider"))
		}
	case "sendgrid":
		if m.SendGrid.APIKey == "" {
			errs = append(errs, errors.New("mail.sendgrid.api_key is required for the sendgrid provider"))
		}
	case "ses":
		if m.SES.Region == "" {
			errs = append(errs, errors.New("mail.ses.region is required for the ses provider"))
		}
	case "log":
	default:
		errs = append(errs, fmt.Errorf("mail.provider must be one of: smtp, sendgrid, ses, log; got %q", m.Provider))
	}

	if m.Provider != "log" {
		if err := validAddress("mail.from_address", m.FromAddress); err != nil {
			errs = append(errs, err)
		}
		if err := validAddress("mail.admin_address", m.AdminAddress); err != nil {
			errs = append(errs, err)
		}
	}
	if m.SendTimeout <= 0 {
		errs = append(errs, errors.New("mail.send_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (c *CRMConfig) validate() error {
	if !c.Enabled() {
		return nil
	}

	var errs []error

	if c.UpsertTimeout <= 0 {
		errs = append(errs, errors.New("crm.upsert_timeout must be positive"))
	}

	cl := c.Client
	if cl.BaseURL == "" {
		errs = append(errs, errors.New("crm.client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("crm.client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("crm.client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("crm.client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("crm.client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("crm.client.rate_limit.requests_per_second must not be negative"))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("crm.client.rate_limit.burst_size must be >= 1, got %d", cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (e *EdgeConfig) validate() error {
	var errs []error

	for _, origin := range e.CORS.AllowedOrigins {
		if origin == "*" {
			errs = append(errs, errors.New("edge.cors.allowed_origins must not contain * because credentials are allowed"))
		}
	}

	if _, err := e.TrustedProxyPrefixes(); err != nil {
		errs = append(errs, err)
	}

	rl := e.RateLimit
	if rl.Enabled {
		if rl.MaxRequests < 1 {
			errs = append(errs, fmt.Errorf("edge.rate_limit.max_requests must be >= 1, got %d", rl.MaxRequests))
		}
		if rl.Window <= 0 {
			errs = append(errs, errors.New("edge.rate_limit.window must be positive"))
		}
		switch rl.Backend {
		case "memory":
		case "redis":
			if rl.RedisURL == "" {
				errs = append(errs, errors.New("edge.rate_limit.redis_url is required for the redis backend"))
			}
		default:
			errs = append(errs, fmt.Errorf("edge.rate_limit.backend must be one of: memory, redis; got %q", rl.Backend))
		}
	}

	return errors.Join(errs...)
}

func validAddress(key, addr string) error {
	if addr == "" {
		return fmt.Errorf("%s must not be empty", key)
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return fmt.Errorf("%s is not a valid address: %w", key, err)
	}
	return nil
}
