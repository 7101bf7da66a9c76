package ports

import (
	"context"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/contact"
)

// ContactService defines the service port for contact form submissions.
// Implemented by the application layer; called by inbound adapters (handlers).
type ContactService interface {
	// Submit validates the input, sends the admin notification and the
	// user confirmation, and records the lead in the CRM when configured.
	// Returns a *domain.ValidationError (domain.ErrValidation) when the input
	// is rejected and domain.ErrDelivery when either email could not be sent.
	// CRM failures never surface here.
	Submit(ctx context.Context, in contact.Input) (*contact.Receipt, error)

	// Status reports which outbound integrations are configured.
	Status(ctx context.Context) IntegrationStatus
}

// IntegrationStatus describes the configured outbound integrations.
type IntegrationStatus struct {
	Email         bool
	EmailProvider string
	CRM           bool
}
