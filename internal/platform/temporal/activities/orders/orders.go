package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	orderingports "github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

// PublishOrderActivityName delivers a submitted order to the configured sinks.
const PublishOrderActivityName = "orders.activities.PublishOrder"

// Activities groups activities that operate on submitted orders.
type Activities struct {
	sink orderingports.OrderSink
}

// NewActivities wires the order sink into the Temporal activities bundle.
func NewActivities(sink orderingports.OrderSink) *Activities {
	return &Activities{sink: sink}
}

// PublishOrder hands the order to the sink. Sinks see at-least-once delivery.
func (a *Activities) PublishOrder(ctx context.Context, order orderingdomain.SubmittedOrder) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.sink == nil {
		logger.Error("publish order activity not initialized", "orderId", order.ID)
		return errors.New("publish order activity not initialized")
	}
	logger.Info("PublishOrder activity started", "orderId", order.ID, "attempt", activity.GetInfo(ctx).Attempt)
	if err := a.sink.Publish(ctx, &order); err != nil {
		logger.Error("PublishOrder activity failed", "orderId", order.ID, "error", err)
		return err
	}
	logger.Info("PublishOrder activity completed", "orderId", order.ID)
	return nil
}
