// Command checkservices verifies the outbound integrations of the contact
// API without serving traffic: it checks the mail transport, optionally
// sends the test email to the admin address, and confirms the CRM token.
// The CRM is optional, so only mail failures produce a non-zero exit code.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/clients/hubspot"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/mail"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/templates"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/app"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/contact"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/config"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/logging"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

var errChecksFailed = errors.New("service checks failed")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	fset := flag.NewFlagSet("checkservices", flag.ContinueOnError)
	profile := fset.StringP("profile", "p", envOr("APP_PROFILE", "local"), "config profile to load")
	configDir := fset.String("config-dir", "configs", "directory holding the YAML config files")
	sendTest := fset.Bool("send-test", false, "send the test email to the admin address")
	timeout := fset.Duration("timeout", 30*time.Second, "overall deadline for all checks")
	if err := fset.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*profile, config.WithConfigDir(*configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	notifier, sink, err := build(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return runChecks(ctx, out, notifier, sink, *sendTest, time.Now())
}

func build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app.Notifier, *app.LeadSink, error) {
	loc, err := contact.LoadLocation(cfg.Mail.TimeZone)
	if err != nil {
		return nil, nil, err
	}
	renderer, err := templates.New()
	if err != nil {
		return nil, nil, fmt.Errorf("loading templates: %w", err)
	}
	sender, err := mail.New(ctx, cfg.Mail, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("creating mail transport: %w", err)
	}
	notifier := app.NewNotifier(sender, renderer, app.NotifierConfig{
		AdminAddress: cfg.Mail.AdminAddress,
		Location:     loc,
	}, nil, logger)

	var client ports.LeadClient
	if cfg.CRM.Enabled() {
		hc := httpclient.New(&cfg.CRM.Client, "hubspot", nil, logger,
			httpclient.WithBearerToken(cfg.CRM.AccessToken))
		client = hubspot.NewClient(hc, logger)
	}
	sink := app.NewLeadSink(client, app.LeadSinkConfig{
		Enabled:  cfg.CRM.Enabled(),
		Location: loc,
	}, nil, logger)

	return notifier, sink, nil
}

// runChecks prints one line per check to out. It returns errChecksFailed
// when the mail transport is unusable.
func runChecks(ctx context.Context, out io.Writer, n *app.Notifier, s *app.LeadSink, sendTest bool, now time.Time) error {
	ok := true

	fmt.Fprintf(out, "email (%s): ", n.Provider())
	if err := n.Verify(ctx); err != nil {
		fmt.Fprintf(out, "FAIL %v\n", err)
		ok = false
	} else {
		fmt.Fprintln(out, "OK")
	}

	if sendTest && ok {
		fmt.Fprint(out, "test email: ")
		if id, err := n.SendTest(ctx, now); err != nil {
			fmt.Fprintf(out, "FAIL %v\n", err)
			ok = false
		} else {
			fmt.Fprintf(out, "OK %s\n", id)
		}
	}

	fmt.Fprint(out, "crm: ")
	switch err := s.Verify(ctx); {
	case errors.Is(err, app.ErrCRMDisabled):
		fmt.Fprintln(out, "SKIP not configured (optional)")
	case err != nil:
		fmt.Fprintf(out, "WARN %v (optional)\n", err)
	default:
		fmt.Fprintln(out, "OK")
	}

	if !ok {
		return errChecksFailed
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
