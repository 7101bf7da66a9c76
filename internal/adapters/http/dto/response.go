// Package dto provides the JSON request and response shapes of the public
// contact API.
package dto

import (
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/contact"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

const (
	serviceConfigured    = "Configurado"
	serviceNotConfigured = "No configurado"

	// TestMessage is returned by the diagnostic endpoint.
	TestMessage = "API de contacto funcionando correctamente"
)

// ContactResponse is the 200 body of POST /api/contact.
type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ToContactResponse converts a receipt into the success body.
func ToContactResponse(r *contact.Receipt) ContactResponse {
	return ContactResponse{
		Success:   true,
		Message:   r.Message,
		Timestamp: FormatTimestamp(r.Timestamp),
	}
}

// ServicesResponse lists the configuration state of each integration.
type ServicesResponse struct {
	Email string `json:"email"`
	CRM   string `json:"crm"`
}

// TestResponse is the body of GET /api/contact/test.
type TestResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Timestamp string           `json:"timestamp"`
	Services  ServicesResponse `json:"services"`
}

// ToTestResponse converts the integration status into the diagnostic body.
func ToTestResponse(s ports.IntegrationStatus, now time.Time) TestResponse {
	return TestResponse{
		Success:   true,
		Message:   TestMessage,
		Timestamp: FormatTimestamp(now),
		Services: ServicesResponse{
			Email: configured(s.Email),
			CRM:   configured(s.CRM),
		},
	}
}

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service,omitempty"`
	Version   string            `json:"version,omitempty"`
	Timestamp string            `json:"timestamp,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// FormatTimestamp renders t the way every response body does: UTC, RFC 3339
// with milliseconds.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func configured(ok bool) string {
	if ok {
		return serviceConfigured
	}
	return serviceNotConfigured
}
