package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	ordermemory "github.com/padoca/ordering/internal/domains/orders/adapters/memory"
	orderpostgres "github.com/padoca/ordering/internal/domains/orders/adapters/persistence/postgres"
	orderports "github.com/padoca/ordering/internal/domains/orders/ports"
	orderactivities "github.com/padoca/ordering/internal/durable/temporal/activities/orders"
	orderworkflows "github.com/padoca/ordering/internal/durable/temporal/workflows/orders"
	platformmigrations "github.com/padoca/ordering/internal/platform/migrations"
	platformobservability "github.com/padoca/ordering/internal/platform/observability"
	platformpostgres "github.com/padoca/ordering/internal/platform/postgres"
)

func main() {
	ctx := context.Background()
	const serviceName = "padoca-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
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

	store, cleanupStore := buildSnapshotStore(ctx, logger)
	defer cleanupStore()
	activities := orderactivities.NewActivities(store)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.LedgerPersistenceTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.LedgerPersistenceWorkflow, workflow.RegisterOptions{Name: orderworkflows.LedgerPersistenceWorkflowName})
	w.RegisterActivityWithOptions(activities.PersistLedger, activity.RegisterOptions{Name: orderactivities.PersistLedgerActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.LedgerPersistenceTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildSnapshotStore(ctx context.Context, logger *slog.Logger) (orderports.SnapshotStore, func()) {
	dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN"))
	if dsn == "" {
		logger.Warn("POSTGRES_DSN not set, persisting ledger snapshots in worker memory")
		return ordermemory.NewSnapshotStore(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, dsn)
	if err != nil {
		logger.Warn("worker failed to connect to postgres, persisting in memory", slog.String("error", err.Error()))
		return ordermemory.NewSnapshotStore(), func() {}
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("worker failed to run migrations, persisting in memory", slog.String("error", err.Error()))
		return ordermemory.NewSnapshotStore(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("worker failed to unwrap postgres connection, persisting in memory", slog.String("error", err.Error()))
		return ordermemory.NewSnapshotStore(), func() {}
	}
	logger.Info("worker snapshot store configured with postgres")
	return orderpostgres.NewSnapshotStore(db), func() { _ = sqlDB.Close() }
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
