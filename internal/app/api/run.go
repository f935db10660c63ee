package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	orderingserver "github.com/Apurer/bites-ordering-api/go"

	menucatalog "github.com/Apurer/bites-ordering-api/internal/domains/menu/adapters/catalog"
	menuapp "github.com/Apurer/bites-ordering-api/internal/domains/menu/application"
	orderingaccess "github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/access"
	orderingmemory "github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/memory"
	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/notify"
	orderingobs "github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/observability"
	orderingpostgres "github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/persistence/postgres"
	orderingworkflows "github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/workflows"
	orderingapp "github.com/Apurer/bites-ordering-api/internal/domains/ordering/application"
	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	orderingports "github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
	"github.com/Apurer/bites-ordering-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/bites-ordering-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/bites-ordering-api/internal/platform/postgres"
)

const serviceName = "bites-ordering-api"

// Run boots the ordering HTTP API with observability, stores, and order dispatch wired.
// It returns when ctx is cancelled and the server has drained.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, platformobservability.LogConfig{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	menuRepo, err := buildMenuRepository(cfg)
	if err != nil {
		return err
	}
	menuService := menuapp.NewService(menuRepo)
	categories, err := menuService.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load menu from %s: %w", menuRepo.Source(), err)
	}
	logger.Info("menu loaded", slog.String("source", menuRepo.Source()), slog.Any("categories", categories))

	orderStore, cleanupStore := buildOrderStore(ctx, cfg, logger)
	defer cleanupStore()
	carts := orderingmemory.NewCartStore()

	sink, closeSinks := BuildOrderSink(cfg, logger)
	defer closeSinks()
	var dispatcher orderingports.OrderDispatcher = orderingworkflows.NewInlineOrderDispatcher(sink)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, dispatching orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		dispatcher = orderingworkflows.NewTemporalOrderDispatcher(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	coreOrdering := orderingapp.NewService(
		carts,
		orderStore,
		orderingapp.WithDispatcher(dispatcher),
		orderingapp.WithDispatchErrorHandler(func(ctx context.Context, order *orderingdomain.SubmittedOrder, err error) {
			logger.LogAttrs(ctx, slog.LevelError, "order dispatch failed",
				slog.String("order_id", order.ID),
				slog.String("error", err.Error()),
			)
		}),
	)
	ordering := orderingobs.New(
		coreOrdering,
		orderingobs.WithLogger(logger),
		orderingobs.WithTracer(instruments.Tracer("internal.ordering.application")),
		orderingobs.WithMeter(instruments.Meter("internal.ordering.application")),
	)

	handlers := orderingserver.ApiHandleFunctions{
		MenuAPI:  orderingserver.NewMenuAPI(menuService),
		CartAPI:  orderingserver.NewCartAPI(ordering, menuService),
		AdminAPI: orderingserver.NewAdminAPI(ordering, buildAccessChecker(cfg, logger)),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName), orderingserver.CORSMiddleware(cfg.CORSAllowedOrigins))
	orderingserver.NewHTTPMetrics(registry).Mount(router)
	router = orderingserver.NewRouterWithGinEngine(router, handlers)

	if cfg.CartIdleTTLMinutes > 0 {
		purger := orderingapp.NewCartPurger(carts, time.Duration(cfg.CartIdleTTLMinutes)*time.Minute)
		go runCartPurger(ctx, purger, time.Duration(cfg.CartPurgeIntervalMinutes)*time.Minute, logger)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("ordering API listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ordering API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("ordering API shutting down")
	return server.Shutdown(shutdownCtx)
}

func buildMenuRepository(cfg Config) (*menucatalog.Repository, error) {
	if cfg.MenuFile != "" {
		return menucatalog.NewFileRepository(cfg.MenuFile), nil
	}
	return menucatalog.NewPresetRepository(cfg.MenuPreset)
}

func buildOrderStore(ctx context.Context, cfg Config, logger *slog.Logger) (orderingports.OrderStore, func()) {
	db, cleanup := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		return orderingmemory.NewOrderStore(), cleanup
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to migrate postgres schema, falling back to in-memory order store", slog.String("error", err.Error()))
		cleanup()
		return orderingmemory.NewOrderStore(), func() {}
	}
	logger.Info("order store configured with postgres")
	return orderingpostgres.NewOrderStore(db), cleanup
}

// BuildOrderSink always logs orders and adds RabbitMQ and Telegram when configured.
// The API and the worker share it so both dispatch paths deliver alike.
func BuildOrderSink(cfg Config, logger *slog.Logger) (orderingports.OrderSink, func()) {
	sinks := notify.Multi{notify.NewLogSink(logger)}
	var closers []func() error
	if cfg.RabbitMQURL != "" {
		pub, err := notify.DialRabbit(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, kitchen feed disabled", slog.String("error", err.Error()))
		} else {
			sinks = append(sinks, pub)
			closers = append(closers, pub.Close)
			logger.Info("RabbitMQ kitchen feed enabled", slog.String("exchange", cfg.RabbitMQExchange))
		}
	}
	if cfg.TelegramBotToken != "" {
		tg, err := notify.NewTelegramBot(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			logger.Warn("Telegram unavailable, operator alerts disabled", slog.String("error", err.Error()))
		} else {
			sinks = append(sinks, tg)
			logger.Info("Telegram operator alerts enabled")
		}
	}
	return sinks, func() {
		for _, closeFn := range closers {
			if err := closeFn(); err != nil {
				logger.Warn("failed to close order sink", slog.String("error", err.Error()))
			}
		}
	}
}

func buildAccessChecker(cfg Config, logger *slog.Logger) orderingports.AccessChecker {
	if cfg.AdminPassword == "" && cfg.AdminPasswordBcrypt == "" {
		logger.Warn("ADMIN_PASSWORD not set, operator view is locked")
		return orderingaccess.DenyAll{}
	}
	checker, err := orderingaccess.NewPasswordChecker(cfg.AdminPassword, cfg.AdminPasswordBcrypt)
	if err != nil {
		logger.Warn("invalid admin credential configuration, operator view is locked", slog.String("error", err.Error()))
		return orderingaccess.DenyAll{}
	}
	return checker
}

func runCartPurger(ctx context.Context, purger *orderingapp.CartPurger, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := purger.PurgeIdle(ctx)
			if err != nil {
				logger.Warn("cart purge failed", slog.String("error", err.Error()))
				continue
			}
			if removed > 0 {
				logger.Info("idle carts purged", slog.Int("removed", removed))
			}
		}
	}
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
