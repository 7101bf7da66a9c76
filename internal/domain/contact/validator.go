package contact

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
)

// Field names as they appear in the request body and in field errors.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

// Custom validator tags registered by NewValidator.
const (
	tagPersonName = "personname"
	tagPhoneChars = "phonechars"
)

var (
	// personNamePattern accepts Unicode letters (including accented Spanish
	// characters such as á, ñ, Ü) and whitespace.
	personNamePattern = regexp.MustCompile(`^[\p{L}\s]+$`)

	phonePattern = regexp.MustCompile(`^[+]?[0-9\s\-()]+$`)
)

// rule is one check on one field. Tag is a go-playground/validator tag
// expression evaluated with Validate.Var.
type rule struct {
	tag     string
	message string
}

// fieldRules lists every rule per field in form order. All rules run; a
// field breaking two rules yields two field errors.
var fieldRules = []struct {
	field string
	rules []rule
}{
	{FieldName, []rule{
		{"min=2,max=100", "El nombre debe tener entre 2 y 100 caracteres"},
		{tagPersonName, "El nombre solo puede contener letras y espacios"},
	}},
	{FieldEmail, []rule{
		{"email", "Debe proporcionar un email válido"},
		{"max=254", "El email es demasiado largo"},
	}},
	{FieldPhone, []rule{
		{"min=9,max=15", "El teléfono debe tener entre 9 y 15 caracteres"},
		{tagPhoneChars, "El teléfono solo puede contener números, espacios, guiones y paréntesis"},
	}},
	{FieldMessage, []rule{
		{"min=10,max=1000", "El mensaje debe tener entre 10 y 1000 caracteres"},
	}},
}

// Validator checks contact form input against the format and length rules
// and produces a normalized Submission. It has no side effects and is safe
// for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the custom name and phone tags
// registered.
func NewValidator() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation(tagPersonName, matchString(personNamePattern)); err != nil {
		return nil, fmt.Errorf("registering %s validation: %w", tagPersonName, err)
	}
	if err := v.RegisterValidation(tagPhoneChars, matchString(phonePattern)); err != nil {
		return nil, fmt.Errorf("registering %s validation: %w", tagPhoneChars, err)
	}

	return &Validator{validate: v}, nil
}

// Validate normalizes the input and evaluates every rule. It returns either
// an accepted Submission or a *domain.ValidationError listing all violations.
//
// The returned Submission has no ID or ReceivedAt; the caller stamps those.
func (v *Validator) Validate(in Input) (Submission, error) {
	sub := Submission{
		Name:      strings.TrimSpace(in.Name),
		Email:     NormalizeEmail(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Message:   strings.TrimSpace(in.Message),
		IP:        in.IP,
		UserAgent: in.UserAgent,
	}

	values := map[string]string{
		FieldName:    sub.Name,
		FieldEmail:   sub.Email,
		FieldPhone:   sub.Phone,
		FieldMessage: sub.Message,
	}

	verr := &domain.ValidationError{}
	for _, fr := range fieldRules {
		for _, r := range fr.rules {
			if err := v.validate.Var(values[fr.field], r.tag); err != nil {
				verr.Add(fr.field, r.message)
			}
		}
	}

	if !verr.Empty() {
		return Submission{}, verr
	}
	return sub, nil
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}
