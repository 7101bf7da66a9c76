package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/app/fanout"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/contact"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/logging"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/metrics"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// Email subjects.
const (
	SubjectAdminNotification = "🌙 Nuevo contacto desde Moonhaus - %s"
	SubjectUserConfirmation  = "🌙 ¡Gracias por contactar con Moonhaus Valencia!"
	SubjectTest              = "🧪 Test Email - Moonhaus Backend"
)

// NotifierConfig holds the settings the Notifier needs from config.MailConfig.
type NotifierConfig struct {
	// AdminAddress receives the new-contact notification.
	AdminAddress string

	// Location is the zone used for timestamps in the emails. Nil means UTC.
	Location *time.Location
}

// Notifier sends the admin notification and the user confirmation for an
// accepted submission.
type Notifier struct {
	sender   ports.EmailSender
	renderer ports.TemplateRenderer
	cfg      NotifierConfig
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewNotifier creates a Notifier. m and logger may be nil.
func NewNotifier(sender ports.EmailSender, renderer ports.TemplateRenderer, cfg NotifierConfig, m *metrics.Metrics, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Notifier{
		sender:   sender,
		renderer: renderer,
		cfg:      cfg,
		metrics:  m,
		logger:   logger,
	}
}

type outgoing struct {
	template string
	msg      ports.EmailMessage
}

// Notify renders both emails and sends them concurrently. Both must be
// delivered. Any failure returns domain.ErrDelivery; transport detail is
// logged only.
func (n *Notifier) Notify(ctx context.Context, sub contact.Submission) (ports.DeliveryReceipt, error) {
	data := ports.TemplateData{
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Message:   sub.Message,
		Timestamp: contact.FormatLong(sub.ReceivedAt, n.cfg.Location),
	}

	admin, err := n.compose(ports.TemplateAdminNotification, data, ports.EmailMessage{
		To:      n.cfg.AdminAddress,
		Subject: fmt.Sprintf(SubjectAdminNotification, sub.Name),
		Text:    adminText(data),
	})
	if err != nil {
		return ports.DeliveryReceipt{}, err
	}

	user, err := n.compose(ports.TemplateUserConfirmation, data, ports.EmailMessage{
		To:      sub.Email,
		ToName:  sub.Name,
		Subject: SubjectUserConfirmation,
		Text:    userText(data),
	})
	if err != nil {
		return ports.DeliveryReceipt{}, err
	}

	batch := []outgoing{admin, user}
	results := fanout.Run(ctx, len(batch), batch, n.send)

	var failed []string
	for i, r := range results {
		if r.Err == nil {
			continue
		}
		tmpl := batch[i].template
		failed = append(failed, tmpl)
		n.logger.ErrorContext(ctx, "email delivery failed",
			slog.String("operation", "Notifier.Notify"),
			slog.String("submission_id", sub.ID),
			slog.String("template", tmpl),
			slog.String("provider", n.sender.Provider()),
			slog.Any("error", r.Err),
		)
	}
	if len(failed) > 0 {
		return ports.DeliveryReceipt{}, fmt.Errorf("sending %s: %w", strings.Join(failed, ", "), domain.ErrDelivery)
	}

	return ports.DeliveryReceipt{AdminRef: results[0].Value, UserRef: results[1].Value}, nil
}

// SendTest sends the diagnostic template to the admin address.
func (n *Notifier) SendTest(ctx context.Context, now time.Time) (string, error) {
	out, err := n.compose(ports.TemplateTest, ports.TemplateData{
		Timestamp: contact.FormatLong(now, n.cfg.Location),
	}, ports.EmailMessage{
		To:      n.cfg.AdminAddress,
		Subject: SubjectTest,
		Text:    "Si recibes este email, la configuración de correo funciona correctamente.",
	})
	if err != nil {
		return "", err
	}
	return n.send(ctx, out)
}

// Verify checks the transport without sending mail.
func (n *Notifier) Verify(ctx context.Context) error {
	return n.sender.Verify(ctx)
}

// Provider names the configured transport.
func (n *Notifier) Provider() string {
	return n.sender.Provider()
}

func (n *Notifier) compose(template string, data ports.TemplateData, msg ports.EmailMessage) (outgoing, error) {
	html, err := n.renderer.Render(template, data)
	if err != nil {
		n.logger.Error("email template render failed",
			slog.String("template", template),
			slog.Any("error", err),
		)
		return outgoing{}, fmt.Errorf("rendering %s: %w", template, domain.ErrDelivery)
	}
	msg.HTML = html
	return outgoing{template: template, msg: msg}, nil
}

func (n *Notifier) send(ctx context.Context, o outgoing) (string, error) {
	start := time.Now()
	id, err := n.sender.Send(ctx, o.msg)
	n.metrics.ObserveEmailSend(o.template, time.Since(start), err)
	if err == nil {
		n.logger.DebugContext(ctx, "email sent",
			slog.String("template", o.template),
			slog.String("to", logging.MaskEmail(o.msg.To)),
			slog.String("message_id", id),
		)
	}
	return id, err
}

func adminText(d ports.TemplateData) string {
	return fmt.Sprintf("Nuevo contacto desde moonhaus.es\n\nNombre: %s\nEmail: %s\nTeléfono: %s\nFecha: %s\n\nMensaje:\n%s\n",
		d.Name, d.Email, d.Phone, d.Timestamp, d.Message)
}

func userText(d ports.TemplateData) string {
	return fmt.Sprintf("Hola %s,\n\nGracias por contactar con Moonhaus Valencia. Hemos recibido tu mensaje y te responderemos en menos de 24 horas.\n\nTu mensaje:\n%s\n\nEl equipo de Moonhaus\n",
		d.Name, d.Message)
}
