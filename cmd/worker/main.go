package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/bites-ordering-api/internal/app/api"
	platformobservability "github.com/Apurer/bites-ordering-api/internal/platform/observability"
	orderactivities "github.com/Apurer/bites-ordering-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/bites-ordering-api/internal/platform/temporal/workflows/orders"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	ctx := context.Background()
	const serviceName = "bites-ordering-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, platformobservability.LogConfig{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	sink, closeSinks := api.BuildOrderSink(cfg, logger)
	defer closeSinks()
	orderActivities := orderactivities.NewActivities(sink)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderDispatchTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderDispatchWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderDispatchWorkflowName})
	w.RegisterActivityWithOptions(orderActivities.PublishOrder, activity.RegisterOptions{Name: orderactivities.PublishOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderDispatchTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
