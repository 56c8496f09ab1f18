// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Sommelier admin API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and run migrations.
//  4. Connect to Redis.
//  5. Build the recommendation service client.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/sommelier/internal/api"
	"github.com/taibuivan/sommelier/internal/core/audit"
	"github.com/taibuivan/sommelier/internal/core/dish"
	"github.com/taibuivan/sommelier/internal/core/reference"
	"github.com/taibuivan/sommelier/internal/core/wine"
	"github.com/taibuivan/sommelier/internal/platform/config"
	"github.com/taibuivan/sommelier/internal/platform/constants"
	"github.com/taibuivan/sommelier/internal/platform/migration"
	pgstore "github.com/taibuivan/sommelier/internal/platform/postgres"
	redisstore "github.com/taibuivan/sommelier/internal/platform/redis"
	"github.com/taibuivan/sommelier/internal/platform/remote"
	"github.com/taibuivan/sommelier/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[Sommelier] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("restaurant_id", cfg.RestaurantID),
		slog.Int("sales_points", cfg.SalesPoints),
	)

	// Root context for startup, bounded so misconfiguration fails fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL (audit log) ─────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()
	cache := redisstore.NewCache(rdb)

	// ── 5. Recommendation service ─────────────────────────────────────────
	client, err := remote.NewClient(remote.Options{
		BaseURL:       cfg.RecoAPIURL,
		Token:         cfg.RecoAPIToken,
		Timeout:       cfg.RecoTimeout,
		RatePerSecond: cfg.RecoRateLimit,
		Burst:         constants.UpstreamBurst,
	})
	must(log, err, "build recommendation client")

	// ── 6. Operator tokens ────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
		CheckRemote: client.Ping,
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	auditService := audit.NewService(audit.NewPostgresRepository(pool), log)
	salesPoints := wine.SalesPointContext{Count: cfg.SalesPoints}

	wineRepository := wine.NewCachedRepository(wine.NewRemoteRepository(client), cache, cfg.CacheTTL)
	wineService := wine.NewService(wineRepository, auditService, cfg.RestaurantID, salesPoints, log)

	dishRepository := dish.NewCachedRepository(dish.NewRemoteRepository(client), cache, cfg.CacheTTL)
	dishService := dish.NewService(dishRepository, auditService, cfg.RestaurantID, salesPoints, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokens, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Wine:      wine.NewHandler(wineService, cfg.DefaultLocale),
		Dish:      dish.NewHandler(dishService, cfg.DefaultLocale),
		Reference: reference.NewHandler(cfg.DefaultLocale),
		Audit:     audit.NewHandler(auditService),
	})

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", "sommelier"))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
