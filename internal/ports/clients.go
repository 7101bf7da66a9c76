package ports

import (
	"context"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/lead"
)

// Template names known to every TemplateRenderer.
const (
	TemplateAdminNotification = "admin-notification"
	TemplateUserConfirmation  = "user-confirmation"
	TemplateTest              = "test"
)

// EmailMessage is a single outbound HTML email. The sender address is a
// property of the transport, not of the message.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

// EmailSender defines the client port for an email transport.
type EmailSender interface {
	// Send delivers msg and returns the transport's message identifier.
	// Errors carry transport detail and must not be shown to end users.
	Send(ctx context.Context, msg EmailMessage) (string, error)

	// Verify checks credentials and connectivity without sending mail.
	Verify(ctx context.Context) error

	// Provider names the transport (e.g. "smtp", "sendgrid").
	Provider() string
}

// TemplateData is the data passed to email templates. Fields a template
// does not use are left empty.
type TemplateData struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	Timestamp string
}

// TemplateRenderer renders named HTML templates.
type TemplateRenderer interface {
	// Render executes the template called name with data. Unknown names
	// return an error.
	Render(name string, data TemplateData) (string, error)
}

// DeliveryReceipt holds the transport message IDs of the two emails sent
// for a submission.
type DeliveryReceipt struct {
	AdminRef string
	UserRef  string
}

// LeadClient defines the client port for the CRM. Implemented by the CRM
// anti-corruption layer.
type LeadClient interface {
	// CreateLead creates a contact and returns its CRM ID.
	// Returns domain.ErrConflict if a contact with the same email exists.
	CreateLead(ctx context.Context, props lead.Properties) (string, error)

	// SearchLeadByEmail returns the ID of the contact with that email.
	// Returns domain.ErrNotFound if there is none.
	SearchLeadByEmail(ctx context.Context, email string) (string, error)

	// UpdateLead patches properties on an existing contact.
	UpdateLead(ctx context.Context, id string, props lead.Properties) error

	// AddNote attaches a note to the contact.
	AddNote(ctx context.Context, id string, note lead.Note) error

	// Verify performs a cheap authenticated read to confirm the token works.
	Verify(ctx context.Context) error
}
