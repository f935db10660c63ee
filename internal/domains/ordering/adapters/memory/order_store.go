package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

var _ ports.OrderStore = (*OrderStore)(nil)

// OrderStore is the process-lifetime submitted-orders sequence. Orders are
// lost on restart.
type OrderStore struct {
	mu     sync.RWMutex
	orders []*domain.SubmittedOrder
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) Append(_ context.Context, order *domain.SubmittedOrder) (*domain.SubmittedOrder, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := order.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, clone)
	return clone.Clone(), nil
}

func (s *OrderStore) List(_ context.Context) ([]*domain.SubmittedOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*domain.SubmittedOrder, 0, len(s.orders))
	for _, order := range s.orders {
		list = append(list, order.Clone())
	}
	return list, nil
}
