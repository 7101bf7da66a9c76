// Package mail provides the email transports behind ports.EmailSender:
// SMTP, SendGrid, Amazon SES and a log-only sender for local development.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/config"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// Provider names accepted in mail.provider.
const (
	ProviderSMTP     = "smtp"
	ProviderSendGrid = "sendgrid"
	ProviderSES      = "ses"
	ProviderLog      = "log"
)

// Sender identifies the From header of every outgoing message.
type Sender struct {
	Name    string
	Address string
}

// New builds the transport selected by cfg.Provider. Every Send is bounded
// by cfg.SendTimeout when it is positive.
func New(ctx context.Context, cfg config.MailConfig, logger *slog.Logger) (ports.EmailSender, error) {
	from := Sender{Name: cfg.FromName, Address: cfg.FromAddress}

	var (
		s   ports.EmailSender
		err error
	)
	switch cfg.Provider {
	case ProviderSMTP:
		s, err = NewSMTPSender(cfg.SMTP, from, cfg.SendTimeout)
	case ProviderSendGrid:
		s = NewSendGridSender(cfg.SendGrid.APIKey, from, logger)
	case ProviderSES:
		s, err = NewSESSender(ctx, cfg.SES.Region, from)
	case ProviderLog:
		s = NewLogSender(logger)
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s mail sender: %w", cfg.Provider, err)
	}

	if cfg.SendTimeout > 0 {
		s = &timeoutSender{EmailSender: s, timeout: cfg.SendTimeout}
	}
	return s, nil
}

type timeoutSender struct {
	ports.EmailSender
	timeout time.Duration
}

func (t *timeoutSender) Send(ctx context.Context, msg ports.EmailMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.EmailSender.Send(ctx, msg)
}

func (t *timeoutSender) Verify(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.EmailSender.Verify(ctx)
}
