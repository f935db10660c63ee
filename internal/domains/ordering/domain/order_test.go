package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSubmittedOrder_Success(t *testing.T) {
	items := []string{"Pizza", "Cake"}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("EAT", 3*3600))

	order, err := NewSubmittedOrder(CustomerDetails{Name: " Alice ", Contact: "0700000000", Address: "Kampala"}, items, now)
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Equal(t, "Alice", order.CustomerName)
	require.Equal(t, []string{"Pizza", "Cake"}, order.Items)
	require.Equal(t, time.UTC, order.SubmittedAt.Location())

	items[0] = "Lemonade"
	require.Equal(t, "Pizza", order.Items[0])
}

func TestNewSubmittedOrder_ReportsAllReasons(t *testing.T) {
	_, err := NewSubmittedOrder(CustomerDetails{Name: "  ", Contact: "", Address: "\t"}, nil, time.Now())
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []Reason{ReasonMissingName, ReasonMissingContact, ReasonMissingAddress, ReasonEmptyCart}, verr.Reasons)
	require.Len(t, verr.Messages(), 4)
	require.Contains(t, err.Error(), "customer name is required")
}

func TestNewSubmittedOrder_EmptyCartWithValidFields(t *testing.T) {
	_, err := NewSubmittedOrder(CustomerDetails{Name: "Alice", Contact: "0700000000", Address: "Kampala"}, []string{}, time.Now())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []Reason{ReasonEmptyCart}, verr.Reasons)
	require.True(t, verr.Has(ReasonEmptyCart))
	require.False(t, verr.Has(ReasonMissingName))
}

func TestSubmittedOrder_CloneIsIndependent(t *testing.T) {
	order, err := NewSubmittedOrder(CustomerDetails{Name: "Alice", Contact: "1", Address: "Kampala"}, []string{"Pizza"}, time.Now())
	require.NoError(t, err)

	clone := order.Clone()
	clone.Items[0] = "Cake"
	require.Equal(t, []string{"Pizza"}, order.Items)
	require.Nil(t, (*SubmittedOrder)(nil).Clone())
}
