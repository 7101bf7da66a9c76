package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// SendGridSender sends mail through the SendGrid v3 API.
type SendGridSender struct {
	client *sendgrid.Client
	apiKey string
	host   string
	from   Sender
	logger *slog.Logger
}

// NewSendGridSender creates a SendGridSender for the public API host.
func NewSendGridSender(apiKey string, from Sender, logger *slog.Logger) *SendGridSender {
	return newSendGridSender(apiKey, "", from, logger)
}

// newSendGridSender allows pointing at a different host; empty means the
// SendGrid default.
func newSendGridSender(apiKey, host string, from Sender, logger *slog.Logger) *SendGridSender {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	req := sendgrid.GetRequest(apiKey, "/v3/mail/send", host)
	req.Method = rest.Post
	return &SendGridSender{
		client: &sendgrid.Client{Request: req},
		apiKey: apiKey,
		host:   host,
		from:   from,
		logger: logger,
	}
}

// Send delivers msg and returns SendGrid's X-Message-Id.
func (s *SendGridSender) Send(ctx context.Context, msg ports.EmailMessage) (string, error) {
	from := sgmail.NewEmail(s.from.Name, s.from.Address)
	to := sgmail.NewEmail(msg.ToName, msg.To)

	text := msg.Text
	if text == "" {
		text = msg.HTML
	}
	message := sgmail.NewSingleEmail(from, msg.Subject, to, text, msg.HTML)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return "", fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		s.logger.ErrorContext(ctx, "sendgrid returned error status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", resp.Body),
		)
		return "", fmt.Errorf("sendgrid send: status %d", resp.StatusCode)
	}

	return http.Header(resp.Headers).Get("X-Message-Id"), nil
}

// Verify checks that the API key is accepted.
func (s *SendGridSender) Verify(ctx context.Context) error {
	req := sendgrid.GetRequest(s.apiKey, "/v3/scopes", s.host)
	req.Method = rest.Get

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid verify: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sendgrid verify: status %d", resp.StatusCode)
	}
	return nil
}

// Provider returns "sendgrid".
func (s *SendGridSender) Provider() string { return ProviderSendGrid }
