package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

// maxCartAttempts bounds retries after a cart is evicted mid-request.
const maxCartAttempts = 3

// DispatchErrorHandler observes dispatch failures; they never fail a submission.
type DispatchErrorHandler func(ctx context.Context, order *domain.SubmittedOrder, err error)

// Service orchestrates session carts and the shared order store.
type Service struct {
	carts      ports.CartStore
	orders     ports.OrderStore
	dispatcher ports.OrderDispatcher
	onDispatch DispatchErrorHandler
	now        func() time.Time
}

type Option func(*Service)

// WithDispatcher forwards each submitted order downstream.
func WithDispatcher(d ports.OrderDispatcher) Option {
	return func(s *Service) {
		if d != nil {
			s.dispatcher = d
		}
	}
}

func WithDispatchErrorHandler(fn DispatchErrorHandler) Option {
	return func(s *Service) {
		s.onDispatch = fn
	}
}

// WithClock overrides the time source for deterministic testing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(carts ports.CartStore, orders ports.OrderStore, opts ...Option) *Service {
	s := &Service{
		carts:      carts,
		orders:     orders,
		dispatcher: ports.NoopDispatcher,
		now:        time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) manager(ctx context.Context, sessionID string) (*CartManager, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ports.ErrSessionRequired
	}
	if s.carts == nil {
		return nil, errors.New("cart store not configured")
	}
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	m := NewCartManager(cart, s.orders)
	m.now = s.now
	return m, nil
}

// withCart runs fn against the session's current cart, fetching a new one when
// the cart was evicted between lookup and use.
func (s *Service) withCart(ctx context.Context, sessionID string, fn func(m *CartManager) error) error {
	for attempt := 1; ; attempt++ {
		m, err := s.manager(ctx, sessionID)
		if err != nil {
			return err
		}
		err = fn(m)
		if errors.Is(err, domain.ErrCartRetired) && attempt < maxCartAttempts {
			continue
		}
		return err
	}
}

func (s *Service) AddItem(ctx context.Context, sessionID, itemName string) (*ports.AddedItem, error) {
	var added ports.AddedItem
	err := s.withCart(ctx, sessionID, func(m *CartManager) error {
		var err error
		added, err = m.AddItem(itemName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *Service) ListItems(ctx context.Context, sessionID string) (*ports.CartView, error) {
	m, err := s.manager(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items := m.ListItems()
	state := domain.CartEmpty
	if len(items) > 0 {
		state = domain.CartNonEmpty
	}
	return &ports.CartView{Items: items, State: state}, nil
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.withCart(ctx, sessionID, func(m *CartManager) error {
		return m.Clear()
	})
}

func (s *Service) Submit(ctx context.Context, sessionID string, details domain.CustomerDetails) (*domain.SubmittedOrder, error) {
	var order *domain.SubmittedOrder
	err := s.withCart(ctx, sessionID, func(m *CartManager) error {
		var err error
		order, err = m.Submit(ctx, details)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := s.dispatcher.Dispatch(ctx, order.Clone()); err != nil && s.onDispatch != nil {
		s.onDispatch(ctx, order.Clone(), err)
	}
	return order, nil
}

func (s *Service) ListSubmittedOrders(ctx context.Context) ([]*domain.SubmittedOrder, error) {
	if s.orders == nil {
		return nil, errors.New("order store not configured")
	}
	return s.orders.List(ctx)
}

var _ ports.Service = (*Service)(nil)
