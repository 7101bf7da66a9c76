package lead

import (
	"errors"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
)

// Kind is the result of a lead upsert.
type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
	KindSkipped Kind = "skipped"
	KindFailed  Kind = "failed"
)

// Class separates failures operators must act on from ones that will
// likely resolve on their own.
type Class string

const (
	ClassTransient     Class = "transient"
	ClassConfiguration Class = "configuration"
)

// Outcome is what happened to the CRM side of a submission. It is logged
// and counted, never shown to the submitter.
type Outcome struct {
	Kind   Kind
	ID     string
	Reason string
	Class  Class
	Err    error
}

// Created is the outcome of a newly created lead.
func Created(id string) Outcome { return Outcome{Kind: KindCreated, ID: id} }

// Updated is the outcome of refreshing an existing lead.
func Updated(id string) Outcome { return Outcome{Kind: KindUpdated, ID: id} }

// Skipped is the outcome when the CRM was not called.
func Skipped(reason string) Outcome { return Outcome{Kind: KindSkipped, Reason: reason} }

// Failed wraps err. Rejected credentials are a configuration problem;
// anything else is treated as transient.
func Failed(err error) Outcome {
	o := Outcome{Kind: KindFailed, Err: err, Class: ClassTransient}
	if err != nil {
		o.Reason = err.Error()
	}
	if errors.Is(err, domain.ErrForbidden) {
		o.Class = ClassConfiguration
	}
	return o
}

// Succeeded reports whether a lead record was written.
func (o Outcome) Succeeded() bool {
	return o.Kind == KindCreated || o.Kind == KindUpdated
}

// NeedsAttention reports whether an operator has to fix something.
func (o Outcome) NeedsAttention() bool {
	return o.Kind == KindFailed && o.Class == ClassConfiguration
}

// Label is the metric label for the outcome, e.g. "created" or
// "failed_configuration".
func (o Outcome) Label() string {
	if o.Kind == KindFailed {
		return string(o.Kind) + "_" + string(o.Class)
	}
	return string(o.Kind)
}
