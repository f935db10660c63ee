package notify

import (
	"context"
	"errors"

	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	orderingports "github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

var _ orderingports.OrderSink = Multi(nil)

// Multi publishes to every sink and joins their failures.
type Multi []orderingports.OrderSink

func (m Multi) Publish(ctx context.Context, order *orderingdomain.SubmittedOrder) error {
	var errs []error
	for _, sink := range m {
		if sink == nil {
			continue
		}
		if err := sink.Publish(ctx, order.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
