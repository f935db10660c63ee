package application

import (
	"context"
	"errors"
	"time"

	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

// CartManager runs the cart workflow for one session cart against the
// shared order store.
type CartManager struct {
	cart   *domain.Cart
	orders ports.OrderStore
	now    func() time.Time
}

func NewCartManager(cart *domain.Cart, orders ports.OrderStore) *CartManager {
	if cart == nil {
		cart = domain.NewCart()
	}
	return &CartManager{cart: cart, orders: orders, now: time.Now}
}

// AddItem appends the name without checking it against the menu.
// It only fails with domain.ErrCartRetired when the cart was evicted.
func (m *CartManager) AddItem(itemName string) (ports.AddedItem, error) {
	size, err := m.cart.Add(itemName)
	if err != nil {
		return ports.AddedItem{}, err
	}
	return ports.AddedItem{ItemName: itemName, CartSize: size}, nil
}

func (m *CartManager) ListItems() []string {
	return m.cart.Items()
}

func (m *CartManager) State() domain.CartState {
	return m.cart.State()
}

func (m *CartManager) Clear() error {
	return m.cart.Clear()
}

// Submit records the cart as a SubmittedOrder and empties the cart. On any
// failure the cart and the order store are left as they were.
func (m *CartManager) Submit(ctx context.Context, details domain.CustomerDetails) (*domain.SubmittedOrder, error) {
	if m.orders == nil {
		return nil, errors.New("order store not configured")
	}
	var saved *domain.SubmittedOrder
	err := m.cart.Checkout(func(items []string) error {
		order, err := domain.NewSubmittedOrder(details, items, m.now())
		if err != nil {
			return err
		}
		saved, err = m.orders.Append(ctx, order)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

func (m *CartManager) ListSubmittedOrders(ctx context.Context) ([]*domain.SubmittedOrder, error) {
	if m.orders == nil {
		return nil, errors.New("order store not configured")
	}
	return m.orders.List(ctx)
}
