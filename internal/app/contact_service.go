// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/app/fanout"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/contact"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/lead"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/logging"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/metrics"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// Compile-time check that ContactService implements ports.ContactService.
var _ ports.ContactService = (*ContactService)(nil)

// ReceiptMessage is shown to the submitter after a successful submission.
const ReceiptMessage = "¡Gracias por contactarnos! Te responderemos en menos de 24 horas."

// Task names used in fan-out reports and logs.
const (
	taskEmail = "email"
	taskLead  = "lead"
)

// DefaultLeadTimeout bounds the CRM upsert when ContactConfig.LeadTimeout is
// zero. It stays well below the default request timeout.
const DefaultLeadTimeout = 8 * time.Second

// ContactConfig carries the settings and clock of ContactService.
// Zero values select DefaultLeadTimeout, the real clock and random UUIDs.
type ContactConfig struct {
	// LeadTimeout caps the whole CRM upsert chain. The response never waits
	// longer than this on the CRM.
	LeadTimeout time.Duration
	Now         func() time.Time
	NewID       func() string
}

// ContactService implements ports.ContactService. It validates input, then
// runs the Notifier (required) and the LeadSink (optional) side by side.
type ContactService struct {
	validator *contact.Validator
	notifier  *Notifier
	leads     *LeadSink
	leadTTL   time.Duration
	now       func() time.Time
	newID     func() string
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	logger    *slog.Logger
}

// NewContactService creates a ContactService. m and logger may be nil.
func NewContactService(v *contact.Validator, n *Notifier, l *LeadSink, cfg ContactConfig, m *metrics.Metrics, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	if cfg.LeadTimeout <= 0 {
		cfg.LeadTimeout = DefaultLeadTimeout
	}
	return &ContactService{
		validator: v,
		notifier:  n,
		leads:     l,
		leadTTL:   cfg.LeadTimeout,
		now:       cfg.Now,
		newID:     cfg.NewID,
		metrics:   m,
		tracer:    otel.GetTracerProvider().Tracer(telemetry.InstrumentationScope),
		logger:    logger,
	}
}

// Submit handles one contact form submission. Validation errors are
// terminal. After validation the emails and the CRM upsert run
// concurrently; only email failure fails the request.
func (s *ContactService) Submit(ctx context.Context, in contact.Input) (*contact.Receipt, error) {
	ctx, span := s.tracer.Start(ctx, "contact.submit")
	defer span.End()

	start := s.now()
	logger := s.logger.With(slog.String("ip", in.IP))

	sub, err := s.validator.Validate(in)
	if err != nil {
		s.metrics.ObserveSubmission(metrics.ResultInvalid)
		span.SetAttributes(attribute.String("contact.result", metrics.ResultInvalid))
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			logger.InfoContext(ctx, "contact submission rejected",
				slog.String("validation", "failed"),
				slog.Int("violations", len(verr.Fields)),
			)
		}
		return nil, err
	}

	sub.ID = s.newID()
	sub.ReceivedAt = s.now().UTC()
	span.SetAttributes(attribute.String("contact.submission_id", sub.ID))
	logger = logger.With(
		slog.String("submission_id", sub.ID),
		slog.String("email", logging.MaskEmail(sub.Email)),
	)

	if in.IsSpam() {
		s.metrics.ObserveSubmission(metrics.ResultSpam)
		span.SetAttributes(attribute.String("contact.result", metrics.ResultSpam))
		logger.WarnContext(ctx, "honeypot filled, submission discarded",
			slog.String("user_agent", in.UserAgent),
		)
		return s.receipt(sub), nil
	}

	var (
		delivery ports.DeliveryReceipt
		outcome  lead.Outcome
	)
	report, err := fanout.RequireAll(ctx, logger,
		[]fanout.Task{{Name: taskEmail, Run: func(ctx context.Context) error {
			r, err := s.notifier.Notify(ctx, sub)
			delivery = r
			return err
		}}},
		[]fanout.Task{{Name: taskLead, Run: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, s.leadTTL)
			defer cancel()
			outcome = s.leads.Upsert(ctx, sub)
			return nil
		}}},
	)
	if r, ok := report.Result(taskLead); ok && r.Err != nil {
		outcome = lead.Failed(r.Err)
	}

	emailStatus := "sent"
	if err != nil {
		emailStatus = "failed"
	}
	logger.InfoContext(ctx, "contact submission processed",
		slog.String("validation", "passed"),
		slog.String("email_delivery", emailStatus),
		slog.String("admin_ref", delivery.AdminRef),
		slog.String("user_ref", delivery.UserRef),
		slog.String("lead_outcome", outcome.Label()),
		slog.String("lead_id", outcome.ID),
		slog.Duration("duration", s.now().Sub(start)),
	)
	span.SetAttributes(attribute.String("contact.lead_outcome", outcome.Label()))

	if err != nil {
		s.metrics.ObserveSubmission(metrics.ResultDeliveryFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "email delivery failed")
		if !errors.Is(err, domain.ErrDelivery) {
			err = errors.Join(domain.ErrDelivery, err)
		}
		return nil, err
	}

	s.metrics.ObserveSubmission(metrics.ResultAccepted)
	span.SetAttributes(attribute.String("contact.result", metrics.ResultAccepted))
	return s.receipt(sub), nil
}

// Status reports which integrations are configured. The log transport does
// not count as configured email.
func (s *ContactService) Status(_ context.Context) ports.IntegrationStatus {
	provider := s.notifier.Provider()
	return ports.IntegrationStatus{
		Email:         provider != "" && provider != "log",
		EmailProvider: provider,
		CRM:           s.leads.Enabled(),
	}
}

func (s *ContactService) receipt(sub contact.Submission) *contact.Receipt {
	return &contact.Receipt{ID: sub.ID, Message: ReceiptMessage, Timestamp: sub.ReceivedAt}
}
