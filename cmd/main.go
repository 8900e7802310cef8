package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adpilot/internal/adapter/executor"
	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/postgres"
	redisadapter "adpilot/internal/adapter/redis"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/db"
)

// main is the entry point of the automation engine. It loads
// configuration, optionally runs database migrations, initializes the
// database pool, the redis-backed campaign registry and the engine,
// then starts the HTTP server and the tick loop. On receiving a
// termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	rdb, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer rdb.Close()

	registry := redisadapter.NewCampaignRegistry(rdb)
	eng := usecase.NewEngine(
		postgres.NewMetricStore(pool),
		registry,
		postgres.NewConfigStore(pool, logger),
		postgres.NewActionStore(pool),
		executor.NewRegistryExecutor(registry, logger),
		usecase.Options{
			PendingTTL:          cfg.Engine.PendingTTL,
			AutoApproveSchedule: cfg.Engine.AutoApproveSchedule,
			HistoryDepth:        cfg.Engine.HistoryDepth,
		},
		logger,
	)

	// The engine does not own its tick driver; this loop is it.
	go func() {
		ticker := time.NewTicker(cfg.Engine.TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := eng.Tick(ctx); err != nil {
					logger.Error("tick error", slog.Any("error", err))
				}
			}
		}
	}()

	handler := httpadapter.NewHandler(eng, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
