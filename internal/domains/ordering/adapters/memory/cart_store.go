package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

var _ ports.CartStore = (*CartStore)(nil)

// CartStore keeps one in-process cart per session id.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
	now   func() time.Time
}

func NewCartStore() *CartStore {
	return &CartStore{carts: map[string]*domain.Cart{}, now: time.Now}
}

// WithClock overrides the time source handed to new carts.
func (s *CartStore) WithClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *CartStore) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[sessionID]; ok {
		return cart, nil
	}
	cart := domain.NewCart()
	cart.WithClock(s.now)
	s.carts[sessionID] = cart
	return cart, nil
}

// EvictIdle retires idle carts before dropping them, so a caller still holding
// one gets ErrCartRetired instead of writing to a cart nobody can read.
func (s *CartStore) EvictIdle(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, cart := range s.carts {
		if cart.RetireIfIdle(cutoff) {
			delete(s.carts, id)
			evicted++
		}
	}
	return evicted, nil
}

// Len reports the number of live carts.
func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}
