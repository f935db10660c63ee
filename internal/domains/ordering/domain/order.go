package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CustomerDetails are the delivery fields captured by the order form.
type CustomerDetails struct {
	Name    string
	Contact string
	Address string
}

// Normalize trims surrounding whitespace from every field.
func (d CustomerDetails) Normalize() CustomerDetails {
	return CustomerDetails{
		Name:    strings.TrimSpace(d.Name),
		Contact: strings.TrimSpace(d.Contact),
		Address: strings.TrimSpace(d.Address),
	}
}

// SubmittedOrder is a finalized order. Items is always an independent copy.
type SubmittedOrder struct {
	ID           string
	CustomerName string
	Contact      string
	Address      string
	Items        []string
	SubmittedAt  time.Time
}

// NewSubmittedOrder validates the details and items and snapshots the items.
// Every failing reason is reported in a single *ValidationError.
func NewSubmittedOrder(details CustomerDetails, items []string, now time.Time) (*SubmittedOrder, error) {
	details = details.Normalize()
	var reasons []Reason
	if details.Name == "" {
		reasons = append(reasons, ReasonMissingName)
	}
	if details.Contact == "" {
		reasons = append(reasons, ReasonMissingContact)
	}
	if details.Address == "" {
		reasons = append(reasons, ReasonMissingAddress)
	}
	if len(items) == 0 {
		reasons = append(reasons, ReasonEmptyCart)
	}
	if len(reasons) > 0 {
		return nil, &ValidationError{Reasons: reasons}
	}
	return &SubmittedOrder{
		ID:           uuid.NewString(),
		CustomerName: details.Name,
		Contact:      details.Contact,
		Address:      details.Address,
		Items:        cloneItems(items),
		SubmittedAt:  now.UTC(),
	}, nil
}

// Clone returns a deep copy so callers never share Items with a store.
func (o *SubmittedOrder) Clone() *SubmittedOrder {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Items = cloneItems(o.Items)
	return &clone
}

func cloneItems(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}
