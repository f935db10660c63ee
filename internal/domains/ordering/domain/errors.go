package domain

import (
	"errors"
	"strings"
)

// Reason enumerates why a submission was rejected.
type Reason string

const (
	ReasonMissingName    Reason = "missing_name"
	ReasonMissingContact Reason = "missing_contact"
	ReasonMissingAddress Reason = "missing_address"
	ReasonEmptyCart      Reason = "empty_cart"
)

// ErrValidation matches any *ValidationError via errors.Is.
var ErrValidation = errors.New("order validation failed")

var reasonMessages = map[Reason]string{
	ReasonMissingName:    "customer name is required",
	ReasonMissingContact: "contact for delivery is required",
	ReasonMissingAddress: "delivery address is required",
	ReasonEmptyCart:      "no items in cart, add items from the menu",
}

// Message returns the user-facing text for the reason.
func (r Reason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return string(r)
}

// ValidationError carries every failing reason of a submission.
type ValidationError struct {
	Reasons []Reason
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Reasons) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Messages(), "; ")
}

// Messages returns the user-facing text for each reason, in order.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Reasons))
	for _, r := range e.Reasons {
		out = append(out, r.Message())
	}
	return out
}

// Has reports whether the reason is present.
func (e *ValidationError) Has(reason Reason) bool {
	for _, r := range e.Reasons {
		if r == reason {
			return true
		}
	}
	return false
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
