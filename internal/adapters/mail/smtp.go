package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/config"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// SMTPSender delivers mail through an authenticated SMTP relay such as
// smtp.gmail.com with an app password.
type SMTPSender struct {
	client *gomail.Client
	from   Sender
}

// NewSMTPSender creates an SMTPSender. Port 465 uses implicit TLS; any
// other port requires STARTTLS.
func NewSMTPSender(cfg config.SMTPConfig, from Sender, timeout time.Duration) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	}
	if cfg.Port == 465 {
		opts = append(opts, gomail.WithSSLPort(false))
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	}
	if timeout > 0 {
		opts = append(opts, gomail.WithTimeout(timeout))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("configuring smtp client: %w", err)
	}
	return &SMTPSender{client: client, from: from}, nil
}

// Send delivers msg and returns the generated Message-ID.
func (s *SMTPSender) Send(ctx context.Context, msg ports.EmailMessage) (string, error) {
	m, err := buildMessage(s.from, msg)
	if err != nil {
		return "", err
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	return m.GetMessageID(), nil
}

// Verify connects and authenticates without sending.
func (s *SMTPSender) Verify(ctx context.Context) error {
	if err := s.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp connect: %w", err)
	}
	return s.client.Close()
}

// Provider returns "smtp".
func (s *SMTPSender) Provider() string { return ProviderSMTP }

func buildMessage(from Sender, msg ports.EmailMessage) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(from.Name, from.Address); err != nil {
		return nil, fmt.Errorf("setting from address: %w", err)
	}
	if err := m.AddToFormat(msg.ToName, msg.To); err != nil {
		return nil, fmt.Errorf("setting recipient: %w", err)
	}
	if msg.HTML == "" && msg.Text == "" {
		return nil, errors.New("message has no body")
	}

	m.Subject(msg.Subject)
	m.SetMessageID()
	m.SetDate()

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	}
	return m, nil
}
