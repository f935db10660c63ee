package orders

import (
	"go.temporal.io/sdk/workflow"

	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	"github.com/Apurer/bites-ordering-api/internal/platform/temporal/sequences"
)

const (
	// OrderDispatchTaskQueue is polled by cmd/worker.
	OrderDispatchTaskQueue = "ordering-dispatch"
	// OrderDispatchWorkflowName is the registered workflow type.
	OrderDispatchWorkflowName = "orders.workflows.OrderDispatch"
)

// OrderDispatchWorkflowInput carries the order and the trace of the submitting request.
type OrderDispatchWorkflowInput struct {
	Order   orderingdomain.SubmittedOrder
	TraceID string
}

// OrderDispatchWorkflow delivers one submitted order to the kitchen and operator sinks.
func OrderDispatchWorkflow(ctx workflow.Context, input OrderDispatchWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("order dispatch workflow started", "orderId", input.Order.ID, "traceId", input.TraceID)
	if err := sequences.RunOrderDispatchSequence(ctx, input.Order); err != nil {
		return err
	}
	logger.Info("order dispatch workflow completed", "orderId", input.Order.ID)
	return nil
}
