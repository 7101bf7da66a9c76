// Package main is the entry point for the contact API. It loads .env and the
// layered config, wires all dependencies using samber/do v2, starts the HTTP
// server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/clients/hubspot"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/mail"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/ratelimit"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/templates"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/app"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/contact"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/lead"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/config"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/health"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/logging"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/metrics"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

const (
	serviceName         = "Moonhaus Backend"
	crmClientName       = "hubspot"
	otelShutdownTimeout = 5 * time.Second
	contactRoute        = "/api/contact"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	reg := metrics.NewRegistry()
	biz, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	do.ProvideValue(injector, biz)
	do.ProvideValue(injector, reg)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	defer closeRedis(injector, logger)

	svc := do.MustInvoke[ports.ContactService](injector)
	status := svc.Status(ctx)
	logger.Info("contact api configured",
		slog.String("profile", profile),
		slog.String("version", version),
		slog.String("email_provider", status.EmailProvider),
		slog.Bool("email_configured", status.Email),
		slog.Bool("crm_configured", status.CRM),
		slog.Bool("rate_limit", cfg.Edge.RateLimit.Enabled),
	)

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerDomain(injector, cfg)
	registerOutbound(ctx, injector, cfg, logger)
	registerApp(injector, cfg, logger)
	registerInbound(injector, cfg, logger)
}

func registerDomain(injector *do.RootScope, cfg *config.Config) {
	do.Provide(injector, func(_ do.Injector) (*contact.Validator, error) {
		return contact.NewValidator()
	})

	do.Provide(injector, func(_ do.Injector) (*time.Location, error) {
		return contact.LoadLocation(cfg.Mail.TimeZone)
	})
}

func registerOutbound(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.TemplateRenderer, error) {
		return templates.New()
	})

	do.Provide(injector, func(_ do.Injector) (ports.EmailSender, error) {
		return mail.New(ctx, cfg.Mail, logger)
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		tm := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.CRM.Client, crmClientName, tm, logger,
			httpclient.WithBearerToken(cfg.CRM.AccessToken),
			httpclient.WithUserAgent("moonhaus-contact-api/"+version),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*hubspot.Client, error) {
		return hubspot.NewClient(do.MustInvoke[*httpclient.Client](i), logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*redis.Client, error) {
		return ratelimit.Connect(ctx, cfg.Edge.RateLimit.RedisURL)
	})

	do.Provide(injector, func(i do.Injector) (ports.RateLimiter, error) {
		rl := cfg.Edge.RateLimit
		if rl.Backend != "redis" {
			return ratelimit.NewMemory(rl.MaxRequests, rl.Window), nil
		}
		client, err := do.Invoke[*redis.Client](i)
		if err != nil {
			return nil, err
		}
		store := ratelimit.NewRedis(client, rl.MaxRequests, rl.Window)
		do.MustInvoke[ports.HealthRegistry](i).Register(store)
		return store, nil
	})
}

func registerApp(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*app.Notifier, error) {
		return app.NewNotifier(
			do.MustInvoke[ports.EmailSender](i),
			do.MustInvoke[ports.TemplateRenderer](i),
			app.NotifierConfig{
				AdminAddress: cfg.Mail.AdminAddress,
				Location:     do.MustInvoke[*time.Location](i),
			},
			do.MustInvoke[*metrics.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.LeadSink, error) {
		sinkCfg := app.LeadSinkConfig{
			Enabled:  cfg.CRM.Enabled(),
			Tags:     leadTags(cfg.CRM.Tags),
			Location: do.MustInvoke[*time.Location](i),
		}

		var client ports.LeadClient
		if sinkCfg.Enabled {
			hs := do.MustInvoke[*hubspot.Client](i)
			do.MustInvoke[ports.HealthRegistry](i).Register(hs)
			client = hs
		}
		return app.NewLeadSink(client, sinkCfg, do.MustInvoke[*metrics.Metrics](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ContactService, error) {
		return app.NewContactService(
			do.MustInvoke[*contact.Validator](i),
			do.MustInvoke[*app.Notifier](i),
			do.MustInvoke[*app.LeadSink](i),
			app.ContactConfig{LeadTimeout: cfg.CRM.UpsertTimeout},
			do.MustInvoke[*metrics.Metrics](i),
			logger,
		), nil
	})
}

func registerInbound(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*handlers.ContactHandler, error) {
		return handlers.NewContactHandler(do.MustInvoke[ports.ContactService](i), cfg.Server.MaxBodyBytes), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, handlers.ServiceInfo{Name: serviceName, Version: version}), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		biz := do.MustInvoke[*metrics.Metrics](i)

		routes := adapthttp.Routes{
			Contact: do.MustInvoke[*handlers.ContactHandler](i),
			Health:  do.MustInvoke[*handlers.HealthHandler](i),
		}
		if cfg.Metrics.Enabled {
			routes.Metrics = metrics.Handler(do.MustInvoke[*prometheus.Registry](i))
			routes.MetricsPath = cfg.Metrics.Path
		}
		proxies, err := cfg.Edge.TrustedProxyPrefixes()
		if err != nil {
			return nil, err
		}
		if rl := cfg.Edge.RateLimit; rl.Enabled {
			limiter, err := do.Invoke[ports.RateLimiter](i)
			if err != nil {
				return nil, fmt.Errorf("creating rate limiter: %w", err)
			}
			routes.ContactMiddleware = append(routes.ContactMiddleware,
				middleware.RateLimit(limiter, rl.Window, biz, contactRoute))
		}

		return adapthttp.NewRouter(routes,
			middleware.Recovery(logger),
			middleware.RealIP(proxies),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.SecurityHeaders(cfg.Edge.HSTS),
			middleware.CORS(cfg.Edge.CORS.AllowedOrigins, cfg.Edge.CORS.MaxAge),
			chimw.Compress(5),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}

func leadTags(t config.LeadTags) lead.Tags {
	return lead.Tags{
		LeadSource:         t.LeadSource,
		LeadSourceDetail:   t.LeadSourceDetail,
		InterestType:       t.InterestType,
		LocationPreference: t.LocationPreference,
		ContactReason:      t.ContactReason,
	}
}

// closeRedis closes the Redis client if the graph created one.
func closeRedis(injector *do.RootScope, logger *slog.Logger) {
	if rl := do.MustInvoke[*config.Config](injector).Edge.RateLimit; !rl.Enabled || rl.Backend != "redis" {
		return
	}
	client, err := do.Invoke[*redis.Client](injector)
	if err != nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Warn("closing redis client", slog.Any("error", err))
	}
}
