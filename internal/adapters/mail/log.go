package mail

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/logging"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// LogSender logs messages instead of sending them. Used for local
// development and tests.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogSender{logger: logger}
}

// Send logs the recipient and subject and returns a random ID.
func (s *LogSender) Send(ctx context.Context, msg ports.EmailMessage) (string, error) {
	id := "log-" + uuid.NewString()
	s.logger.InfoContext(ctx, "email not sent, log transport",
		slog.String("message_id", id),
		slog.String("to", logging.MaskEmail(msg.To)),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)
	return id, nil
}

// Verify always succeeds.
func (s *LogSender) Verify(context.Context) error { return nil }

// Provider returns "log".
func (s *LogSender) Provider() string { return ProviderLog }
