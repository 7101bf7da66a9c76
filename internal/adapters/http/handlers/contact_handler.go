package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// ContactHandler serves the public contact form endpoints.
type ContactHandler struct {
	svc          ports.ContactService
	maxBodyBytes int64
	now          func() time.Time
}

// NewContactHandler creates a ContactHandler. A non-positive maxBodyBytes
// falls back to DefaultMaxBodyBytes.
func NewContactHandler(svc ports.ContactService, maxBodyBytes int64) *ContactHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &ContactHandler{svc: svc, maxBodyBytes: maxBodyBytes, now: time.Now}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if !decodeJSONBody(w, r, &req, h.maxBodyBytes) {
		return
	}

	receipt, err := h.svc.Submit(r.Context(), req.ToInput(clientIP(r), r.UserAgent()))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToContactResponse(receipt))
}

// Test handles GET /api/contact/test.
func (h *ContactHandler) Test(w http.ResponseWriter, r *http.Request) {
	status := h.svc.Status(r.Context())
	dto.WriteJSON(w, r, http.StatusOK, dto.ToTestResponse(status, h.now()))
}
