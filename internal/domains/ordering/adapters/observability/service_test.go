package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	ordermemory "github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/memory"
	orderingapp "github.com/Apurer/bites-ordering-api/internal/domains/ordering/application"
	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
)

func TestService_RecordsSubmissionsAndRejections(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	svc := New(
		orderingapp.NewService(ordermemory.NewCartStore(), ordermemory.NewOrderStore()),
		WithLogger(logger),
		WithMeter(provider.Meter("test")),
	)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "s1", domain.CustomerDetails{})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddItem(ctx, "s1", "Pizza")
	require.NoError(t, err)
	order, err := svc.Submit(ctx, "s1", domain.CustomerDetails{Name: "Alice", Contact: "1", Address: "Kampala"})
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	totals := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					totals[m.Name] += dp.Value
				}
			}
		}
	}
	require.Equal(t, int64(1), totals["ordering.service.items_added"])
	require.Equal(t, int64(1), totals["ordering.service.orders_submitted"])
	require.Equal(t, int64(4), totals["ordering.service.validation_failures"])

	require.Contains(t, logs.String(), "order rejected")
	require.Contains(t, logs.String(), order.ID)
}
