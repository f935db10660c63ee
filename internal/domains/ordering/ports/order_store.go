package ports

import (
	"context"

	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
)

// OrderStore is the shared append-only sequence of submitted orders.
// Implementations copy orders on the way in and on the way out.
type OrderStore interface {
	Append(ctx context.Context, order *domain.SubmittedOrder) (*domain.SubmittedOrder, error)
	List(ctx context.Context) ([]*domain.SubmittedOrder, error)
}
