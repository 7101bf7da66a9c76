package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
)

func TestValidationError_IsErrValidation(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("submit: %w", domain.NewValidationError("email", "invalid"))

	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("errors.Is(err, ErrValidation) = false for %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false for %T", err)
	}
	if !verr.Has("email") {
		t.Errorf("Has(\"email\") = false, fields = %v", verr.Fields)
	}
}

func TestValidationError_PreservesOrder(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{}
	verr.Add("name", "too short")
	verr.Add("email", "invalid")
	verr.Add("name", "bad characters")

	want := "validation error: name: too short; email: invalid; name: bad characters"
	if got := verr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("len(Fields) = %d, want 3", len(verr.Fields))
	}
	if verr.Fields[1].Field != "email" {
		t.Errorf("Fields[1].Field = %q, want \"email\"", verr.Fields[1].Field)
	}
}

func TestValidationError_Empty(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{}
	if !verr.Empty() {
		t.Error("Empty() = false for a fresh ValidationError")
	}
	if verr.Has("name") {
		t.Error("Has(\"name\") = true for a fresh ValidationError")
	}

	verr.Add("name", "required")
	if verr.Empty() {
		t.Error("Empty() = true after Add")
	}
}

func TestSentinels_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrValidation,
		domain.ErrConflict,
		domain.ErrForbidden,
		domain.ErrUnavailable,
		domain.ErrDelivery,
		domain.ErrRateLimited,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want distinct sentinels", a, b)
			}
		}
	}
}
