package application

import (
	"context"
	"errors"
	"time"

	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

// CartPurger drops carts that have not been touched within the TTL.
type CartPurger struct {
	carts ports.CartStore
	ttl   time.Duration
	now   func() time.Time
}

func NewCartPurger(carts ports.CartStore, ttl time.Duration) *CartPurger {
	return &CartPurger{carts: carts, ttl: ttl, now: time.Now}
}

// PurgeIdle evicts idle carts once and returns how many were removed.
func (p *CartPurger) PurgeIdle(ctx context.Context) (int, error) {
	if p == nil || p.carts == nil {
		return 0, errors.New("cart purger not configured")
	}
	if p.ttl <= 0 {
		return 0, nil
	}
	return p.carts.EvictIdle(ctx, p.now().Add(-p.ttl))
}
