package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"

	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	orderingports "github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

var _ orderingports.OrderSink = (*LogSink)(nil)

// LogSink writes every order to the structured log.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(ctx context.Context, order *orderingdomain.SubmittedOrder) error {
	if order == nil {
		return errors.New("order is required")
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "order ready for kitchen",
		slog.String("order_id", order.ID),
		slog.String("customer_name", order.CustomerName),
		slog.String("contact", order.Contact),
		slog.String("address", order.Address),
		slog.Any("items", order.Items),
	)
	return nil
}
