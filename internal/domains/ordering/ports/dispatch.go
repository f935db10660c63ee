package ports

import (
	"context"

	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
)

// OrderDispatcher hands a freshly submitted order to fulfilment.
type OrderDispatcher interface {
	Dispatch(ctx context.Context, order *domain.SubmittedOrder) error
}

// OrderSink delivers an order to one destination (log, queue, chat).
type OrderSink interface {
	Publish(ctx context.Context, order *domain.SubmittedOrder) error
}

// NoopDispatcher is used when nothing downstream is configured.
var NoopDispatcher OrderDispatcher = noopDispatcher{}

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(_ context.Context, _ *domain.SubmittedOrder) error { return nil }
