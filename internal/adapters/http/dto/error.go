package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
)

// User-facing error messages. Internal error text never reaches the client.
const (
	MsgInvalidData = "Datos inválidos"
	MsgDelivery    = "Error al enviar el email de confirmación"
	MsgInternal    = "Error interno del servidor"
	MsgTooMany     = "Demasiadas solicitudes desde esta IP, por favor intenta de nuevo más tarde."
	MsgNotFoundPfx = "Ruta no encontrada - "
	MsgUnavailable = "Servicio no disponible temporalmente"
	MsgNotAllowed  = "Método no permitido"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Success   bool          `json:"success"`
	Error     string        `json:"error"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp string        `json:"timestamp"`
}

// ErrorDetail is a single field-level validation failure.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RateLimitResponse is the 429 body.
type RateLimitResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	RetryAfter string `json:"retryAfter"`
}

// NewErrorResponse builds the response body for err along with its status
// code. Only validation errors expose details; every other error is reduced
// to a fixed message.
func NewErrorResponse(err error, now time.Time) (int, ErrorResponse) {
	status := domainErrorToStatus(err)
	resp := ErrorResponse{
		Error:     statusMessage(err, status),
		Timestamp: FormatTimestamp(now),
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Details = validationFieldsToDetails(verr.Fields)
	}
	return status, resp
}

// WriteErrorResponse writes the JSON error body for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := NewErrorResponse(err, time.Now())
	WriteJSON(w, r, status, resp)
}

// WriteNotFound writes the JSON 404 body naming the requested path.
func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, r, http.StatusNotFound, ErrorResponse{
		Error:     MsgNotFoundPfx + r.URL.RequestURI(),
		Timestamp: FormatTimestamp(time.Now()),
	})
}

// WriteMethodNotAllowed writes the JSON 405 body.
func WriteMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, r, http.StatusMethodNotAllowed, ErrorResponse{
		Error:     MsgNotAllowed,
		Timestamp: FormatTimestamp(time.Now()),
	})
}

// WriteJSON encodes v as the response body with the given status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func statusMessage(err error, status int) string {
	switch {
	case status == http.StatusBadRequest:
		return MsgInvalidData
	case status == http.StatusTooManyRequests:
		return MsgTooMany
	case status == http.StatusServiceUnavailable:
		return MsgUnavailable
	case errors.Is(err, domain.ErrDelivery):
		return MsgDelivery
	default:
		return MsgInternal
	}
}

// validationFieldsToDetails keeps the order in which violations were found.
func validationFieldsToDetails(fields []domain.FieldError) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for _, f := range fields {
		details = append(details, ErrorDetail{Field: f.Field, Message: f.Message})
	}
	return details
}
