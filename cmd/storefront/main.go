package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/app"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/cqrs"
	"github.com/nikolayk812/storefront/internal/db/migrate"
	"github.com/nikolayk812/storefront/internal/httpapi"
	"github.com/nikolayk812/storefront/internal/logging"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply migrations and exit")
	rollback := flag.Bool("rollback", false, "roll back the latest migration and exit")
	envFile := flag.String("env-file", ".env", "optional dotenv file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("logging.New: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *migrateOnly, *rollback); err != nil {
		logger.Error("storefront stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, migrateOnly, rollback bool) error {
	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if rollback {
		version, err := migrate.Rollback(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate.Rollback: %w", err)
		}
		logger.Info("rolled back", zap.Stringer("version", version))
		return nil
	}

	version, err := migrate.Apply(ctx, pool)
	if err != nil {
		return fmt.Errorf("migrate.Apply: %w", err)
	}
	logger.Info("schema up to date", zap.Stringer("version", version))

	if migrateOnly {
		return nil
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Endpoint:       cfg.OTLPEndpoint,
	})
	if err != nil {
		return fmt.Errorf("telemetry.Setup: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := shutdownTelemetry(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	registry := prometheus.NewRegistry()
	if err := registry.Register(telemetry.NewPoolCollector(pool)); err != nil {
		return fmt.Errorf("registry.Register: %w", err)
	}

	handler, err := buildHandler(cfg, pool, logger, registry)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("http server stopped")
	return nil
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := cfg.PoolConfig()
	if err != nil {
		return nil, fmt.Errorf("cfg.PoolConfig: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return pool, nil
}

func buildHandler(cfg *config.Config, pool *pgxpool.Pool, logger *zap.Logger, registry *prometheus.Registry) (http.Handler, error) {
	products, err := repository.NewProduct(pool)
	if err != nil {
		return nil, fmt.Errorf("repository.NewProduct: %w", err)
	}

	orders, err := repository.NewOrder(pool)
	if err != nil {
		return nil, fmt.Errorf("repository.NewOrder: %w", err)
	}

	transactor, err := repository.NewTransactor(pool)
	if err != nil {
		return nil, fmt.Errorf("repository.NewTransactor: %w", err)
	}

	handlers, err := app.NewHandlers(transactor, products, orders, logger.Named("app"))
	if err != nil {
		return nil, fmt.Errorf("app.NewHandlers: %w", err)
	}

	commands := cqrs.NewCommandBus()
	queries := cqrs.NewQueryBus()

	if err := app.Register(commands, queries, handlers); err != nil {
		return nil, fmt.Errorf("app.Register: %w", err)
	}

	logger.Info("handlers registered",
		zap.Strings("commands", commands.Commands()),
		zap.Strings("queries", queries.Queries()))

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	server, err := httpapi.NewServer(httpapi.Deps{
		Commands:    commands,
		Queries:     queries,
		DB:          pool,
		Logger:      logger.Named("http"),
		Registry:    registry,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("httpapi.NewServer: %w", err)
	}

	return server.Handler(), nil
}
