package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/contact"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/lead"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/logging"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/metrics"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// ErrCRMDisabled is returned by LeadSink.Verify when no access token is set.
var ErrCRMDisabled = errors.New("crm integration not configured")

// LeadSinkConfig holds the settings the LeadSink needs from config.CRMConfig.
type LeadSinkConfig struct {
	// Enabled is false when no CRM access token is configured.
	Enabled bool

	// Tags are the fixed classification properties written on new leads.
	Tags lead.Tags

	// Location is the zone used for dates in properties and notes.
	Location *time.Location
}

// LeadSink records submissions as CRM leads on a best-effort basis.
type LeadSink struct {
	client  ports.LeadClient
	cfg     LeadSinkConfig
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewLeadSink creates a LeadSink. client may be nil when cfg.Enabled is false.
func NewLeadSink(client ports.LeadClient, cfg LeadSinkConfig, m *metrics.Metrics, logger *slog.Logger) *LeadSink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if client == nil {
		cfg.Enabled = false
	}
	if cfg.Tags == (lead.Tags{}) {
		cfg.Tags = lead.DefaultTags()
	}
	return &LeadSink{client: client, cfg: cfg, metrics: m, logger: logger}
}

// Enabled reports whether submissions are sent to the CRM.
func (s *LeadSink) Enabled() bool {
	return s.cfg.Enabled
}

// Verify performs an authenticated read against the CRM.
func (s *LeadSink) Verify(ctx context.Context) error {
	if !s.cfg.Enabled {
		return ErrCRMDisabled
	}
	return s.client.Verify(ctx)
}

// Upsert creates the lead, or refreshes the existing one when the email is
// already known. It never fails; the result is reported as an Outcome.
func (s *LeadSink) Upsert(ctx context.Context, sub contact.Submission) lead.Outcome {
	outcome := s.upsert(ctx, sub)
	s.metrics.ObserveLeadOutcome(outcome.Label())
	s.logOutcome(ctx, sub, outcome)
	return outcome
}

func (s *LeadSink) upsert(ctx context.Context, sub contact.Submission) lead.Outcome {
	if !s.cfg.Enabled {
		return lead.Skipped("crm not configured")
	}

	id, err := s.client.CreateLead(ctx, lead.CreateProperties(sub, s.cfg.Tags, s.cfg.Location))
	switch {
	case err == nil:
		s.attachNote(ctx, sub, id)
		return lead.Created(id)
	case !errors.Is(err, domain.ErrConflict):
		return lead.Failed(err)
	}

	id, err = s.client.SearchLeadByEmail(ctx, sub.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return lead.Failed(fmt.Errorf("create conflicted but no contact matches the email: %w", err))
		}
		return lead.Failed(err)
	}

	if err := s.client.UpdateLead(ctx, id, lead.UpdateProperties(sub, s.cfg.Location)); err != nil {
		return lead.Failed(err)
	}

	s.attachNote(ctx, sub, id)
	return lead.Updated(id)
}

// attachNote never affects the outcome.
func (s *LeadSink) attachNote(ctx context.Context, sub contact.Submission, id string) {
	note := lead.NewNote(sub, s.cfg.Tags, s.cfg.Location)
	if err := s.client.AddNote(ctx, id, note); err != nil {
		s.logger.WarnContext(ctx, "failed to attach lead note",
			slog.String("submission_id", sub.ID),
			slog.String("lead_id", id),
			slog.Any("error", err),
		)
	}
}

func (s *LeadSink) logOutcome(ctx context.Context, sub contact.Submission, o lead.Outcome) {
	attrs := []any{
		slog.String("submission_id", sub.ID),
		slog.String("email", logging.MaskEmail(sub.Email)),
		slog.String("outcome", string(o.Kind)),
	}

	switch {
	case o.NeedsAttention():
		s.logger.ErrorContext(ctx, "crm rejected credentials, lead not recorded",
			append(attrs, slog.Bool("alert", true), slog.String("class", string(o.Class)), slog.String("reason", o.Reason))...)
	case o.Kind == lead.KindFailed:
		s.logger.WarnContext(ctx, "lead upsert failed",
			append(attrs, slog.String("class", string(o.Class)), slog.String("reason", o.Reason))...)
	case o.Kind == lead.KindSkipped:
		s.logger.DebugContext(ctx, "lead upsert skipped", append(attrs, slog.String("reason", o.Reason))...)
	case o.Succeeded():
		s.logger.InfoContext(ctx, "lead recorded", append(attrs, slog.String("lead_id", o.ID))...)
	}
}
