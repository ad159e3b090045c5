package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dukerupert/consign/internal"
	"github.com/dukerupert/consign/internal/delivery"
	"github.com/dukerupert/consign/internal/domain"
	"github.com/dukerupert/consign/internal/handler"
	"github.com/dukerupert/consign/internal/inventory"
	"github.com/dukerupert/consign/internal/memory"
	"github.com/dukerupert/consign/internal/postgres"
	"github.com/dukerupert/consign/internal/repository"
	"github.com/dukerupert/consign/internal/telemetry"
)

// collaborators are the read-only sources the splitter consults.
type collaborators struct {
	directory domain.WarehouseDirectory
	inventory domain.InventoryLookup
	catalog   domain.DigitalGoodsLookup
	close     func()
}

func openPostgres(ctx context.Context, cfg *internal.Config, logger *slog.Logger) (*collaborators, error) {
	logger.Info("Connecting to database...")
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Migrations run through database/sql on top of the same pool.
	logger.Info("Running database migrations...")
	sqlDB := stdlib.OpenDBFromPool(pool)
	err = internal.RunMigrations(sqlDB)
	sqlDB.Close()
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	repo := repository.New(pool)
	return &collaborators{
		directory: postgres.NewWarehouseDirectory(repo),
		inventory: postgres.NewInventoryLookup(repo),
		catalog:   postgres.NewCatalog(repo),
		close:     pool.Close,
	}, nil
}

func openSnapshot(cfg *internal.Config, logger *slog.Logger) (*collaborators, error) {
	logger.Info("Loading inventory snapshot...", "path", cfg.SnapshotPath)
	store, err := memory.LoadSnapshotFile(cfg.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	logger.Info("Inventory snapshot loaded")
	return &collaborators{
		directory: store,
		inventory: store,
		catalog:   store,
		close:     func() {},
	}, nil
}

func connectNATS(cfg internal.NATSConfig, logger *slog.Logger) (*nats.Conn, error) {
	return nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(func(_ *nats.Conn, sub *nats.Subscription, err error) {
			subject := ""
			if sub != nil {
				subject = sub.Subject
			}
			logger.Error("NATS async error", "subject", subject, "error", err)
		}),
	)
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize error tracking
	flushSentry, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:         cfg.Sentry.DSN,
		Enabled:     cfg.Sentry.Enabled,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Sentry.Release,
		SampleRate:  cfg.Sentry.SampleRate,
		Debug:       cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer flushSentry()
	defer telemetry.RecoverWithSentry()

	// Open the inventory source
	var source *collaborators
	switch cfg.Source {
	case internal.SourceSnapshot:
		source, err = openSnapshot(cfg, logger)
	default:
		source, err = openPostgres(ctx, cfg, logger)
	}
	if err != nil {
		return err
	}
	defer source.close()

	stock, catalog := source.inventory, source.catalog
	if cfg.InventoryCacheTTL > 0 {
		stock = inventory.NewCachedLookup(stock, cfg.InventoryCacheTTL, domain.SystemClock)
		catalog = inventory.NewCachedCatalog(catalog, cfg.InventoryCacheTTL, domain.SystemClock)
		logger.Info("Inventory cache enabled", "ttl", cfg.InventoryCacheTTL)
	}

	// Initialize Prometheus metrics
	metrics := telemetry.NewAllocationMetrics("consign", prometheus.DefaultRegisterer)

	splitter := delivery.NewSplitter(source.directory, stock, catalog,
		delivery.WithLogger(logger),
		delivery.WithMetrics(metrics),
	)
	allocation := handler.NewAllocationHandler(splitter, logger, metrics, cfg.RequestTimeout)

	// Connect to NATS and subscribe
	logger.Info("Connecting to NATS...", "url", cfg.NATS.URL)
	nc, err := connectNATS(cfg.NATS, logger)
	if err != nil {
		return fmt.Errorf("nats connection failed: %w", err)
	}
	defer nc.Close()

	if _, err := handler.Subscribe(nc, cfg.NATS.QueueGroup, allocation); err != nil {
		return fmt.Errorf("nats subscription failed: %w", err)
	}
	logger.Info("Serving allocation requests",
		"subjects", allocation.Subjects(),
		"queue", cfg.NATS.QueueGroup,
	)

	// Metrics endpoint (should be protected in production via firewall)
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		if !nc.IsConnected() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NATS DISCONNECTED"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting metrics server", "address", cfg.MetricsAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down...")
	case err := <-serveErr:
		return fmt.Errorf("metrics server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Finish in-flight requests before closing the source.
	if err := nc.Drain(); err != nil {
		logger.Error("NATS drain failed", "error", err)
	}
	for nc.IsDraining() && shutdownCtx.Err() == nil {
		time.Sleep(50 * time.Millisecond)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Metrics server shutdown failed", "error", err)
	}

	logger.Info("Shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
