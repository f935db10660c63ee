package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	orderactivities "github.com/Apurer/bites-ordering-api/internal/platform/temporal/activities/orders"
)

// RunOrderDispatchSequence publishes a submitted order with retries.
func RunOrderDispatchSequence(ctx workflow.Context, order orderingdomain.SubmittedOrder) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("order dispatch sequence started", "orderId", order.ID)
	publishOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    10,
		},
	}

	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, publishOptions), orderactivities.PublishOrderActivityName, order).Get(ctx, nil)
	if err != nil {
		logger.Error("order dispatch sequence failed", "orderId", order.ID, "error", err)
		return err
	}
	logger.Info("order dispatch sequence completed", "orderId", order.ID)
	return nil
}
