package domain

import (
	"errors"
	"sync"
	"time"
)

// ErrCartRetired is returned by mutations on a cart its store has dropped.
// Callers fetch the session's cart again and retry.
var ErrCartRetired = errors.New("cart retired")

// CartState is the coarse state of a cart.
type CartState string

const (
	CartEmpty    CartState = "empty"
	CartNonEmpty CartState = "non_empty"
)

// Cart holds one session's in-progress selections in insertion order.
// Entries are item names; ordering the same item twice yields two entries.
type Cart struct {
	mu        sync.Mutex
	entries   []string
	touchedAt time.Time
	retired   bool
	now       func() time.Time
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	c := &Cart{now: time.Now}
	c.touchedAt = c.now()
	return c
}

// WithClock overrides the time source for deterministic testing.
func (c *Cart) WithClock(now func() time.Time) {
	if now == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	c.touchedAt = now()
}

// Add appends an entry and returns the new cart size.
func (c *Cart) Add(itemName string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.retired {
		return 0, ErrCartRetired
	}
	c.entries = append(c.entries, itemName)
	c.touchedAt = c.now()
	return len(c.entries), nil
}

// Items returns a copy of the entries.
func (c *Cart) Items() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneItems(c.entries)
}

// Clear empties the cart. Clearing an empty cart is a no-op.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.retired {
		return ErrCartRetired
	}
	c.entries = nil
	c.touchedAt = c.now()
	return nil
}

// State reports Empty or NonEmpty.
func (c *Cart) State() CartState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) == 0 {
		return CartEmpty
	}
	return CartNonEmpty
}

// TouchedAt is the time of the last mutation.
func (c *Cart) TouchedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touchedAt
}

// RetireIfIdle empties and retires the cart when its last mutation is before
// cutoff. A retired cart rejects every further mutation.
func (c *Cart) RetireIfIdle(cutoff time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.retired {
		return true
	}
	if !c.touchedAt.Before(cutoff) {
		return false
	}
	c.entries = nil
	c.retired = true
	return true
}

// Checkout hands a snapshot of the entries to commit while the cart is locked
// and empties the cart only when commit returns nil.
func (c *Cart) Checkout(commit func(items []string) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.retired {
		return ErrCartRetired
	}
	if err := commit(cloneItems(c.entries)); err != nil {
		return err
	}
	c.entries = nil
	c.touchedAt = c.now()
	return nil
}
