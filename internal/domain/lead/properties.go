package lead

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/contact"
)

// CRM property names written by the service.
const (
	PropEmail              = "email"
	PropFirstName          = "firstname"
	PropLastName           = "lastname"
	PropPhone              = "phone"
	PropCompany            = "company"
	PropWebsite            = "website"
	PropMessage            = "message"
	PropLeadStatus         = "hs_lead_status"
	PropLifecycleStage     = "lifecyclestage"
	PropLeadSource         = "lead_source"
	PropLeadSourceDetail   = "lead_source_detail"
	PropInterestType       = "interest_type"
	PropLocationPreference = "location_preference"
	PropContactReason      = "contact_reason"
	PropFirstContactDate   = "first_contact_date"
	PropLastContactDate    = "last_contact_date"
	PropNotesLastContacted = "notes_last_contacted"
	PropNotesLastActivity  = "notes_last_activity"
)

const (
	StatusNew      = "NEW"
	LifecycleLead  = "lead"
	timestampStyle = "2006-01-02T15:04:05.000Z07:00"
)

// Properties is a flat set of CRM contact properties.
type Properties map[string]string

// Tags are the fixed attribution values stamped on every new lead.
type Tags struct {
	LeadSource         string
	LeadSourceDetail   string
	InterestType       string
	LocationPreference string
	ContactReason      string
}

// DefaultTags returns the attribution used by the website contact form.
func DefaultTags() Tags {
	return Tags{
		LeadSource:         "Website Contact Form",
		LeadSourceDetail:   "moonhaus.es/contact",
		InterestType:       "Coworking Space",
		LocationPreference: "Valencia - Ruzafa",
		ContactReason:      "Information Request",
	}
}

// SplitName splits a full name on the first space. Everything after it is
// the last name.
func SplitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	first, last, _ = strings.Cut(full, " ")
	return first, strings.TrimSpace(last)
}

// CreateProperties builds the property set for a brand new lead.
func CreateProperties(sub contact.Submission, tags Tags, loc *time.Location) Properties {
	first, last := SplitName(sub.Name)

	return Properties{
		PropEmail:              sub.Email,
		PropFirstName:          first,
		PropLastName:           last,
		PropPhone:              sub.Phone,
		PropCompany:            "",
		PropWebsite:            "",
		PropMessage:            sub.Message,
		PropLeadStatus:         StatusNew,
		PropLifecycleStage:     LifecycleLead,
		PropLeadSource:         tags.LeadSource,
		PropLeadSourceDetail:   tags.LeadSourceDetail,
		PropInterestType:       tags.InterestType,
		PropLocationPreference: tags.LocationPreference,
		PropContactReason:      tags.ContactReason,
		PropFirstContactDate:   FormatTimestamp(sub.ReceivedAt),
		PropNotesLastContacted: "Contacto inicial desde formulario web: " + sub.Message,
		PropNotesLastActivity:  "Formulario enviado el " + contact.FormatDate(sub.ReceivedAt, loc),
	}
}

// UpdateProperties builds the properties refreshed on an existing lead when
// the same person writes in again. The lead goes back to NEW.
func UpdateProperties(sub contact.Submission, loc *time.Location) Properties {
	return Properties{
		PropLeadStatus:         StatusNew,
		PropLastContactDate:    FormatTimestamp(sub.ReceivedAt),
		PropNotesLastContacted: "Nuevo contacto desde formulario web: " + sub.Message,
		PropNotesLastActivity:  "Formulario enviado el " + contact.FormatDate(sub.ReceivedAt, loc),
	}
}

// FormatTimestamp renders t as UTC ISO-8601 with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampStyle)
}
