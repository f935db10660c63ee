package workflows

import (
	"context"
	"errors"
	"fmt"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
	orderworkflows "github.com/Apurer/bites-ordering-api/internal/platform/temporal/workflows/orders"
)

var (
	_ ports.OrderDispatcher = (*TemporalOrderDispatcher)(nil)
	_ ports.OrderDispatcher = (*InlineOrderDispatcher)(nil)
)

// workflowStarter is the part of client.Client the dispatcher uses.
type workflowStarter interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// TemporalOrderDispatcher starts a dispatch workflow per order and returns
// without waiting for it to finish. Workflows are started by their registered
// name because the API never registers workflow functions on its client.
type TemporalOrderDispatcher struct {
	client    workflowStarter
	taskQueue string
}

// NewTemporalOrderDispatcher wires a Temporal client into the dispatcher.
func NewTemporalOrderDispatcher(c client.Client) *TemporalOrderDispatcher {
	return &TemporalOrderDispatcher{client: c, taskQueue: orderworkflows.OrderDispatchTaskQueue}
}

func (d *TemporalOrderDispatcher) Dispatch(ctx context.Context, order *orderingdomain.SubmittedOrder) error {
	if d == nil || d.client == nil {
		return errors.New("temporal order dispatcher not configured")
	}
	if order == nil {
		return errors.New("order is required")
	}
	options := client.StartWorkflowOptions{
		ID:        buildOrderDispatchWorkflowID(order.ID),
		TaskQueue: d.taskQueue,
	}
	_, err := d.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.OrderDispatchWorkflowName,
		orderworkflows.OrderDispatchWorkflowInput{Order: *order.Clone(), TraceID: workflowTraceID(ctx)},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil
		}
		return fmt.Errorf("start order dispatch workflow: %w", err)
	}
	return nil
}

// InlineOrderDispatcher publishes directly to the sink without durable orchestration.
type InlineOrderDispatcher struct {
	sink ports.OrderSink
}

func NewInlineOrderDispatcher(sink ports.OrderSink) *InlineOrderDispatcher {
	return &InlineOrderDispatcher{sink: sink}
}

func (d *InlineOrderDispatcher) Dispatch(ctx context.Context, order *orderingdomain.SubmittedOrder) error {
	if d == nil || d.sink == nil {
		return errors.New("inline order dispatcher not configured")
	}
	return d.sink.Publish(ctx, order)
}

func buildOrderDispatchWorkflowID(orderID string) string {
	return "order-dispatch-" + orderID
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
