package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	cartmemory "github.com/padoca/ordering/internal/domains/cart/adapters/memory"
	cartobs "github.com/padoca/ordering/internal/domains/cart/adapters/observability"
	cartapp "github.com/padoca/ordering/internal/domains/cart/application"
	cartports "github.com/padoca/ordering/internal/domains/cart/ports"
	catalogmemory "github.com/padoca/ordering/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/padoca/ordering/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/padoca/ordering/internal/domains/catalog/application"
	catalogports "github.com/padoca/ordering/internal/domains/catalog/ports"
	ordermemory "github.com/padoca/ordering/internal/domains/orders/adapters/memory"
	orderobs "github.com/padoca/ordering/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/padoca/ordering/internal/domains/orders/adapters/persistence/postgres"
	orderworkflowstore "github.com/padoca/ordering/internal/domains/orders/adapters/workflows"
	orderapp "github.com/padoca/ordering/internal/domains/orders/application"
	orderports "github.com/padoca/ordering/internal/domains/orders/ports"
	platformmigrations "github.com/padoca/ordering/internal/platform/migrations"
	platformobservability "github.com/padoca/ordering/internal/platform/observability"
	platformpostgres "github.com/padoca/ordering/internal/platform/postgres"
	transport "github.com/padoca/ordering/internal/transport/http"
)

// Run boots the ordering HTTP API with observability, repositories, and the
// durable ledger persistence wired.
func Run(ctx context.Context) error {
	const serviceName = "padoca-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
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

	db, cleanupDB := connectDatabase(ctx, cfg, logger)
	defer cleanupDB()

	catalogService := buildCatalogService(db)
	cartService := buildCartService(catalogService, instruments)

	snapshots, temporalCleanup := buildSnapshotStore(cfg, db, instruments)
	defer temporalCleanup()

	orderCore := orderapp.NewService(
		ordermemory.NewLedger(),
		snapshots,
		cartService,
		orderapp.WithLogger(logger),
		orderapp.WithLedgerKey(cfg.LedgerKey),
	)

	if err := boot(ctx, cfg, db, catalogService, orderCore, logger); err != nil {
		return err
	}

	orderService := orderobs.New(
		orderCore,
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	handlers := transport.Handlers{
		Catalog: transport.NewCatalogAPI(catalogService),
		Cart:    transport.NewCartAPI(cartService),
		Orders:  transport.NewOrderAPI(orderService),
	}
	router := transport.NewRouter(handlers, otelgin.Middleware(serviceName))

	addr := ":" + cfg.Port
	logger.Info("ordering API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("ordering API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// boot restores the order ledger and seeds the catalog in parallel before the
// server starts accepting traffic.
func boot(ctx context.Context, cfg Config, db *gorm.DB, catalog catalogports.Service, orders *orderapp.Service, logger *slog.Logger) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := orders.Restore(groupCtx); err != nil {
			return fmt.Errorf("ledger restore: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		if db == nil || !cfg.SeedCatalog {
			return nil
		}
		return seedCatalog(groupCtx, catalog, logger)
	})
	return group.Wait()
}

// seedCatalog loads the default menu into an empty durable catalog.
func seedCatalog(ctx context.Context, catalog catalogports.Service, logger *slog.Logger) error {
	existing, err := catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("catalog seed check: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, product := range catalogmemory.SeedProducts() {
		p := product
		if _, err := catalog.SaveProduct(ctx, &p); err != nil {
			return fmt.Errorf("catalog seed %q: %w", p.Name, err)
		}
	}
	logger.Info("catalog seeded with default menu")
	return nil
}

func connectDatabase(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return nil, func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	logger.Info("postgres connection established")
	return db, func() { _ = sqlDB.Close() }
}

func buildCatalogService(db *gorm.DB) catalogports.Service {
	if db != nil {
		return catalogapp.NewService(catalogpostgres.NewRepository(db))
	}
	return catalogapp.NewService(catalogmemory.NewSeededRepository())
}

func buildCartService(catalog catalogports.Service, instruments *platformobservability.Instruments) cartports.Service {
	core := cartapp.NewService(cartmemory.NewStore(), catalog)
	return cartobs.New(
		core,
		cartobs.WithLogger(instruments.Logger),
		cartobs.WithTracer(instruments.Tracer("internal.cart.application")),
		cartobs.WithMeter(instruments.Meter("internal.cart.application")),
	)
}

// buildSnapshotStore picks the durable layer for ledger snapshots: postgres
// when configured, memory otherwise, with Temporal layered on top when the
// cluster is reachable.
func buildSnapshotStore(cfg Config, db *gorm.DB, instruments *platformobservability.Instruments) (orderports.SnapshotStore, func()) {
	logger := instruments.Logger
	var store orderports.SnapshotStore
	if db != nil {
		store = orderpostgres.NewSnapshotStore(db)
	} else {
		store = ordermemory.NewSnapshotStore()
	}

	temporalClient, err := connectTemporalClient(cfg, instruments)
	if err != nil {
		logger.Warn("Temporal unavailable, persisting ledger snapshots directly", slog.String("error", err.Error()))
		return store, func() {}
	}
	logger.Info("Temporal ledger persistence enabled", slog.String("namespace", cfg.TemporalNamespace))
	return orderworkflowstore.NewTemporalSnapshotStore(temporalClient, store), temporalClient.Close
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-client")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(instruments.Logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}
