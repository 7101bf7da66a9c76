package hubspot

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json;charset=utf-8"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{status: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{status: http.StatusConflict, wantErr: domain.ErrConflict},
		{status: http.StatusUnauthorized, wantErr: domain.ErrForbidden},
		{status: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{status: http.StatusTooManyRequests, wantErr: domain.ErrRateLimited},
		{status: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{status: http.StatusBadGateway, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			resp := &http.Response{StatusCode: tt.status, Header: http.Header{}, Body: http.NoBody}
			if got := TranslateHTTPError(resp); !errors.Is(got, tt.wantErr) {
				t.Errorf("TranslateHTTPError(%d) = %v, want errors.Is %v", tt.status, got, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_ConflictMessage(t *testing.T) {
	t.Parallel()

	resp := jsonResponse(http.StatusConflict,
		`{"status":"error","message":"Contact already exists. Existing ID: 5101","correlationId":"abc","category":"CONFLICT"}`)

	err := TranslateHTTPError(resp)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if !strings.Contains(err.Error(), "Existing ID: 5101") || !strings.Contains(err.Error(), "correlation abc") {
		t.Errorf("err = %q, want HubSpot message and correlation ID", err.Error())
	}
}

func TestTranslateHTTPError_PropertyValidation(t *testing.T) {
	t.Parallel()

	resp := jsonResponse(http.StatusBadRequest, `{
		"status":"error",
		"message":"Property values were not valid",
		"category":"VALIDATION_ERROR",
		"errors":[{"message":"Email address ana@ is invalid","code":"INVALID_EMAIL","context":{"propertyName":["email"]}}]
	}`)

	err := TranslateHTTPError(resp)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *domain.ValidationError", err)
	}
	if !verr.Has("email") {
		t.Errorf("Fields = %v, want email entry", verr.Fields)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("validation error should unwrap to ErrValidation")
	}
}

func TestTranslateHTTPError_NonJSONBodyIgnored(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusBadGateway,
		Header:     http.Header{"Content-Type": []string{"text/html"}},
		Body:       io.NopCloser(strings.NewReader("<html>bad gateway</html>")),
	}

	err := TranslateHTTPError(resp)
	if !strings.HasPrefix(err.Error(), "Bad Gateway") {
		t.Errorf("err = %q, want status text detail", err.Error())
	}
}
