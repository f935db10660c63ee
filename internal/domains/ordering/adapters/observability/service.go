package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	orderingports "github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

const tracerName = "github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/observability/service"

// Service decorates the ordering service with tracing, logging, and metrics.
type Service struct {
	inner   orderingports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core ordering service.
func New(inner orderingports.Service, opts ...Option) orderingports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) AddItem(ctx context.Context, sessionID, itemName string) (*orderingports.AddedItem, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.AddItem",
		trace.WithAttributes(attribute.String("cart.item", itemName)))
	defer span.End()

	result, err := s.inner.AddItem(ctx, sessionID, itemName)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add item to cart", slog.String("cart.item", itemName))
	}
	span.SetAttributes(attribute.Int("cart.size", result.CartSize))
	s.metrics.recordAdded(ctx, itemName)
	s.logInfo(ctx, "item added to cart", slog.String("cart.item", itemName), slog.Int("cart.size", result.CartSize))
	return result, nil
}

func (s *Service) ListItems(ctx context.Context, sessionID string) (*orderingports.CartView, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.ListItems")
	defer span.End()

	result, err := s.inner.ListItems(ctx, sessionID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list cart")
	}
	span.SetAttributes(attribute.Int("cart.size", len(result.Items)), attribute.String("cart.state", string(result.State)))
	return result, nil
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "OrderingService.ClearCart")
	defer span.End()

	if err := s.inner.ClearCart(ctx, sessionID); err != nil {
		return s.handleError(ctx, span, err, "failed to clear cart")
	}
	s.logInfo(ctx, "cart cleared")
	return nil
}

func (s *Service) Submit(ctx context.Context, sessionID string, details orderingdomain.CustomerDetails) (*orderingdomain.SubmittedOrder, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.Submit")
	defer span.End()

	s.logInfo(ctx, "submitting order")
	result, err := s.inner.Submit(ctx, sessionID, details)
	if err != nil {
		var verr *orderingdomain.ValidationError
		if errors.As(err, &verr) {
			s.metrics.recordRejected(ctx, verr.Reasons)
			span.SetAttributes(attribute.StringSlice("order.rejection_reasons", reasonStrings(verr.Reasons)))
			s.logInfo(ctx, "order rejected", slog.Any("reasons", verr.Reasons))
			return nil, err
		}
		return nil, s.handleError(ctx, span, err, "failed to submit order")
	}
	span.SetAttributes(attribute.String("order.id", result.ID), attribute.Int("order.items", len(result.Items)))
	s.metrics.recordSubmitted(ctx, len(result.Items))
	s.logInfo(ctx, "order submitted", slog.String("order.id", result.ID), slog.Int("order.items", len(result.Items)))
	return result, nil
}

func (s *Service) ListSubmittedOrders(ctx context.Context) ([]*orderingdomain.SubmittedOrder, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.ListSubmittedOrders")
	defer span.End()

	result, err := s.inner.ListSubmittedOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list submitted orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func reasonStrings(reasons []orderingdomain.Reason) []string {
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, string(r))
	}
	return out
}

type serviceMetrics struct {
	itemsAdded         metric.Int64Counter
	ordersSubmitted    metric.Int64Counter
	orderItems         metric.Int64Histogram
	validationFailures metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	itemsAdded, _ := m.Int64Counter("ordering.service.items_added", metric.WithDescription("Number of items added to carts"))
	ordersSubmitted, _ := m.Int64Counter("ordering.service.orders_submitted", metric.WithDescription("Number of orders submitted"))
	orderItems, _ := m.Int64Histogram("ordering.service.order_items", metric.WithDescription("Items per submitted order"))
	validationFailures, _ := m.Int64Counter("ordering.service.validation_failures", metric.WithDescription("Submission rejections by reason"))
	return serviceMetrics{
		itemsAdded:         itemsAdded,
		ordersSubmitted:    ordersSubmitted,
		orderItems:         orderItems,
		validationFailures: validationFailures,
	}
}

func (m serviceMetrics) recordAdded(ctx context.Context, item string) {
	if m.itemsAdded != nil {
		m.itemsAdded.Add(ctx, 1, metric.WithAttributes(attribute.String("cart.item", item)))
	}
}

func (m serviceMetrics) recordSubmitted(ctx context.Context, items int) {
	if m.ordersSubmitted != nil {
		m.ordersSubmitted.Add(ctx, 1)
	}
	if m.orderItems != nil {
		m.orderItems.Record(ctx, int64(items))
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context, reasons []orderingdomain.Reason) {
	if m.validationFailures == nil {
		return
	}
	for _, r := range reasons {
		m.validationFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("order.rejection_reason", string(r))))
	}
}

var _ orderingports.Service = (*Service)(nil)
