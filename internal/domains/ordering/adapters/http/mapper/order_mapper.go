package mapper

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	menudomain "github.com/Apurer/bites-ordering-api/internal/domains/menu/domain"
	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	orderingports "github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

// SubmitOrderRequest is the order form payload.
type SubmitOrderRequest struct {
	CustomerName string `json:"customerName"`
	Contact      string `json:"contact"`
	Address      string `json:"address"`
}

// AddItemRequest is the "order this item" payload.
type AddItemRequest struct {
	ItemName string `json:"itemName" binding:"required"`
}

// AddedItem is returned after an item lands in the cart.
type AddedItem struct {
	ItemName string `json:"itemName"`
	CartSize int    `json:"cartSize"`
	Message  string `json:"message"`
}

// CartLine is one cart entry with its menu price when known.
type CartLine struct {
	ItemName string `json:"itemName"`
	Price    string `json:"price,omitempty"`
}

// Cart is the transport view of a session cart.
type Cart struct {
	State string     `json:"state"`
	Items []CartLine `json:"items"`
	Total string     `json:"total"`
}

// Order is the transport shape of a submitted order.
type Order struct {
	Number       int       `json:"number,omitempty"`
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Contact      string    `json:"contact"`
	Address      string    `json:"address"`
	Items        []string  `json:"items"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// ToCustomerDetails converts the form payload into domain details.
func ToCustomerDetails(req SubmitOrderRequest) orderingdomain.CustomerDetails {
	return orderingdomain.CustomerDetails{
		Name:    req.CustomerName,
		Contact: req.Contact,
		Address: req.Address,
	}
}

// FromAddedItem builds the confirmation returned to the shopper.
func FromAddedItem(added *orderingports.AddedItem) AddedItem {
	if added == nil {
		return AddedItem{}
	}
	return AddedItem{
		ItemName: added.ItemName,
		CartSize: added.CartSize,
		Message:  strings.TrimSpace(added.ItemName) + " added to cart!",
	}
}

// FromCartView prices each line with the menu; unknown names stay unpriced.
func FromCartView(view *orderingports.CartView, lookup func(name string) (menudomain.MenuItem, bool)) Cart {
	if view == nil {
		return Cart{State: string(orderingdomain.CartEmpty), Items: []CartLine{}, Total: decimal.Zero.StringFixed(2)}
	}
	total := decimal.Zero
	lines := make([]CartLine, 0, len(view.Items))
	for _, name := range view.Items {
		line := CartLine{ItemName: name}
		if lookup != nil {
			if item, ok := lookup(name); ok {
				line.Price = item.Price.StringFixed(2)
				total = total.Add(item.Price)
			}
		}
		lines = append(lines, line)
	}
	return Cart{State: string(view.State), Items: lines, Total: total.StringFixed(2)}
}

// FromDomainOrder converts a domain order; number is its 1-based position, 0 to omit.
func FromDomainOrder(order *orderingdomain.SubmittedOrder, number int) Order {
	if order == nil {
		return Order{}
	}
	items := make([]string, len(order.Items))
	copy(items, order.Items)
	return Order{
		Number:       number,
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Contact:      order.Contact,
		Address:      order.Address,
		Items:        items,
		SubmittedAt:  order.SubmittedAt,
	}
}

// FromDomainOrders numbers orders in submission order starting at 1.
func FromDomainOrders(orders []*orderingdomain.SubmittedOrder) []Order {
	out := make([]Order, 0, len(orders))
	for i, order := range orders {
		out = append(out, FromDomainOrder(order, i+1))
	}
	return out
}
