// Package notify delivers submitted orders to the kitchen and the operator.
package notify

import (
	"strings"
	"time"

	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
)

// OrderMessage is the wire shape published for a submitted order.
type OrderMessage struct {
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	Contact      string    `json:"contact"`
	Address      string    `json:"address"`
	Items        []string  `json:"items"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

func newOrderMessage(order *orderingdomain.SubmittedOrder) OrderMessage {
	items := make([]string, len(order.Items))
	copy(items, order.Items)
	return OrderMessage{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Contact:      order.Contact,
		Address:      order.Address,
		Items:        items,
		SubmittedAt:  order.SubmittedAt,
	}
}

// summary renders the operator-facing text for an order.
func summary(order *orderingdomain.SubmittedOrder) string {
	var b strings.Builder
	b.WriteString("New order ")
	b.WriteString(order.ID)
	b.WriteString("\nCustomer: ")
	b.WriteString(order.CustomerName)
	b.WriteString("\nContact: ")
	b.WriteString(order.Contact)
	b.WriteString("\nAddress: ")
	b.WriteString(order.Address)
	b.WriteString("\nItems:")
	for _, item := range order.Items {
		b.WriteString("\n- ")
		b.WriteString(item)
	}
	return b.String()
}
