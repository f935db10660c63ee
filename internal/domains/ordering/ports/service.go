package ports

import (
	"context"
	"errors"

	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
)

// ErrSessionRequired is returned when a cart operation has no session.
var ErrSessionRequired = errors.New("session id is required")

// AddedItem confirms an item was appended to the cart.
type AddedItem struct {
	ItemName string
	CartSize int
}

// CartView is the session cart as seen by the presentation layer.
type CartView struct {
	Items []string
	State domain.CartState
}

// OrderLister is everything the operator view may call.
type OrderLister interface {
	ListSubmittedOrders(ctx context.Context) ([]*domain.SubmittedOrder, error)
}

// Service exposes ordering use cases to adapters.
type Service interface {
	OrderLister
	AddItem(ctx context.Context, sessionID, itemName string) (*AddedItem, error)
	ListItems(ctx context.Context, sessionID string) (*CartView, error)
	ClearCart(ctx context.Context, sessionID string) error
	Submit(ctx context.Context, sessionID string, details domain.CustomerDetails) (*domain.SubmittedOrder, error)
}
