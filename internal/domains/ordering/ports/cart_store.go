package ports

import (
	"context"
	"time"

	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
)

// CartStore scopes one cart to each session.
type CartStore interface {
	// Get returns the session's cart, creating an empty one on first use.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	// EvictIdle drops carts whose last mutation is before the cutoff and
	// returns how many were removed.
	EvictIdle(ctx context.Context, cutoff time.Time) (int, error)
}
