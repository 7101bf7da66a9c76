package dto

import "github.com/jsamuelsen11/moonhaus-contact-api/internal/domain/contact"

// ContactRequest is the JSON body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Website string `json:"website,omitempty"`
}

// ToInput converts the request body into a contact.Input. ip and userAgent
// come from the transport.
func (r *ContactRequest) ToInput(ip, userAgent string) contact.Input {
	return contact.Input{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
		Website:   r.Website,
		IP:        ip,
		UserAgent: userAgent,
	}
}
