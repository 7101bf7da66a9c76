// Package hubspot is the anti-corruption layer between the HubSpot CRM v3
// REST API and the lead domain. Wire DTOs stay in this package; callers see
// lead.Properties, lead.Note and domain sentinel errors only.
package hubspot

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// apiError is HubSpot's standard error envelope.
type apiError struct {
	Status        string        `json:"status"`
	Message       string        `json:"message"`
	Category      string        `json:"category"`
	CorrelationID string        `json:"correlationId"`
	Errors        []errorDetail `json:"errors"`
}

type errorDetail struct {
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Context map[string][]string `json:"context"`
}

// TranslateHTTPError maps a HubSpot error response to a domain error.
// 400 responses with per-property errors become a *domain.ValidationError
// keyed by property name.
func TranslateHTTPError(resp *http.Response) error {
	ae := parseAPIError(resp)

	detail := ae.Message
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	if ae.CorrelationID != "" {
		detail += " (correlation " + ae.CorrelationID + ")"
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if verr := toValidationError(ae.Errors); verr != nil {
			return verr
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", detail, domain.ErrRateLimited)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

func parseAPIError(resp *http.Response) apiError {
	if resp.Body == nil {
		return apiError{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		return apiError{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return apiError{}
	}

	var ae apiError
	if err := json.Unmarshal(body, &ae); err != nil {
		return apiError{}
	}
	return ae
}

// toValidationError returns nil when no detail names a property.
func toValidationError(details []errorDetail) *domain.ValidationError {
	var verr *domain.ValidationError
	for _, d := range details {
		for _, prop := range d.Context["propertyName"] {
			if verr == nil {
				verr = &domain.ValidationError{}
			}
			verr.Add(prop, d.Message)
		}
	}
	return verr
}
