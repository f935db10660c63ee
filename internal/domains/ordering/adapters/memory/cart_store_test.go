package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
)

func TestCartStore_ScopesCartsBySession(t *testing.T) {
	store := NewCartStore()
	ctx := context.Background()

	a, err := store.Get(ctx, "session-a")
	require.NoError(t, err)
	b, err := store.Get(ctx, "session-b")
	require.NoError(t, err)

	a.Add("Pizza")
	require.Empty(t, b.Items())

	again, err := store.Get(ctx, "session-a")
	require.NoError(t, err)
	require.Same(t, a, again)
}

func TestCartStore_EvictIdle(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewCartStore()
	store.WithClock(func() time.Time { return now })
	ctx := context.Background()

	stale, err := store.Get(ctx, "stale")
	require.NoError(t, err)
	stale.Add("Pizza")

	now = now.Add(30 * time.Minute)
	active, err := store.Get(ctx, "active")
	require.NoError(t, err)
	active.Add("Cake")

	evicted, err := store.EvictIdle(ctx, now.Add(-10*time.Minute))
	require.NoError(t, err)
	require.Equal(t, 1, evicted)
	require.Equal(t, 1, store.Len())

	kept, err := store.Get(ctx, "active")
	require.NoError(t, err)
	require.Equal(t, []string{"Cake"}, kept.Items())
}

func TestCartStore_EvictedCartRejectsHeldReference(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewCartStore()
	store.WithClock(func() time.Time { return now })
	ctx := context.Background()

	held, err := store.Get(ctx, "s1")
	require.NoError(t, err)

	evicted, err := store.EvictIdle(ctx, now.Add(time.Minute))
	require.NoError(t, err)
	require.Equal(t, 1, evicted)

	_, err = held.Add("Pizza")
	require.ErrorIs(t, err, domain.ErrCartRetired)

	fresh, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotSame(t, held, fresh)
	_, err = fresh.Add("Pizza")
	require.NoError(t, err)
	require.Equal(t, []string{"Pizza"}, fresh.Items())
}
