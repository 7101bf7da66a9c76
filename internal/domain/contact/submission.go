// Package contact models the website contact form: the raw Input decoded from
// a request, the Validator that accepts or rejects it, and the accepted
// Submission that the notification and CRM steps consume.
package contact

import (
	"strings"
	"time"
)

// Input is a contact form exactly as submitted. Nothing about it is trusted.
type Input struct {
	Name    string
	Email   string
	Phone   string
	Message string

	// Website is the hidden honeypot field. Browsers leave it empty.
	Website string

	// Request metadata, used for logging only.
	IP        string
	UserAgent string
}

// IsSpam reports whether the honeypot field was filled in.
func (in Input) IsSpam() bool {
	return strings.TrimSpace(in.Website) != ""
}

// Submission is a contact form that passed every validation rule. All text
// fields are trimmed and Email is lowercased.
type Submission struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Message    string
	ReceivedAt time.Time
	IP         string
	UserAgent  string
}

// Input converts the submission back to the raw form so it can be validated
// again.
func (s Submission) Input() Input {
	return Input{
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Message:   s.Message,
		IP:        s.IP,
		UserAgent: s.UserAgent,
	}
}

// Receipt is returned to the client once a submission has been accepted and
// the confirmation emails were sent.
type Receipt struct {
	ID        string
	Message   string
	Timestamp time.Time
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
