// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Syloma HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Install tracing (optional).
//  4. Load the embedded content snapshot.
//  5. Build the read cache (Redis when configured, in-process otherwise).
//  6. Open the submission journal (PostgreSQL when configured) and migrate it.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
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

	"github.com/scable-inc/syloma/internal/api"
	"github.com/scable-inc/syloma/internal/catalog"
	"github.com/scable-inc/syloma/internal/cms"
	"github.com/scable-inc/syloma/internal/content"
	"github.com/scable-inc/syloma/internal/faq"
	"github.com/scable-inc/syloma/internal/leads"
	"github.com/scable-inc/syloma/internal/platform/cache"
	"github.com/scable-inc/syloma/internal/platform/cmsapi"
	"github.com/scable-inc/syloma/internal/platform/config"
	"github.com/scable-inc/syloma/internal/platform/constants"
	"github.com/scable-inc/syloma/internal/platform/migration"
	pgstore "github.com/scable-inc/syloma/internal/platform/postgres"
	redisstore "github.com/scable-inc/syloma/internal/platform/redis"
	"github.com/scable-inc/syloma/internal/platform/tracing"
	"github.com/scable-inc/syloma/internal/showcase"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("cms_mode", cfg.CMSMode),
		slog.Bool("cms_live", cfg.LiveMode()),
		slog.Bool("redis", cfg.RedisURL != ""),
		slog.Bool("journal", cfg.DatabaseURL != ""),
	)
	if cfg.CMSMode == config.ModeLive && !cfg.HasCredentials() {
		log.Warn("cms_live_mode_without_credentials")
	}

	// Root context of background work (rate limiter sweeper).
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Tracing ────────────────────────────────────────────────────────
	shutdownTracing, err := tracing.Setup(startupCtx, cfg.OTLPEndpoint, constants.AppName, constants.AppVersion, log)
	must(log, err, "install tracing")
	defer func() {
		if terr := shutdownTracing(context.Background()); terr != nil {
			log.Error("tracing_shutdown_error", slog.Any("error", terr))
		}
	}()

	// ── 4. Content ────────────────────────────────────────────────────────
	store, err := content.Embedded()
	must(log, err, "load content snapshot")

	health := api.HealthDependencies{}

	// ── 5. Read cache ─────────────────────────────────────────────────────
	var readCache cache.Cache = cache.NewMemory(cfg.CMSCacheTTL, constants.CacheCleanupInterval)
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		readCache = cache.NewRedis(rdb)
		health.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}

	remote := cmsapi.New(cmsapi.Config{
		BaseURL:     cfg.CMSBaseURL,
		ProjectID:   cfg.CMSProjectID,
		AccessToken: cfg.CMSAccessToken,
		Timeout:     cfg.CMSRequestTimeout,
	})
	client := cms.NewClient(store, remote, readCache, cms.Config{
		Live:     cfg.LiveMode(),
		CacheTTL: cfg.CMSCacheTTL,
	}, log)

	// ── 6. Submission journal ─────────────────────────────────────────────
	var journal leads.Journal = leads.NoopJournal{}
	if cfg.DatabaseURL != "" {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		journal = leads.NewPostgresJournal(pool)
		health.CheckDatabase = func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		}
	}

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Collections: cms.NewHandler(client),
		Catalog:     catalog.NewHandler(catalog.NewService(client, log)),
		FAQ:         faq.NewHandler(faq.NewService(client, log)),
		Showcase:    showcase.NewHandler(showcase.NewService(client, log)),
		Leads:       leads.NewHandler(leads.NewService(client, journal, log)),
	}

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
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
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// newLogger builds the JSON logger and installs it as the default.
func newLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String(constants.FieldApp, constants.AppName))

	slog.SetDefault(logger)
	return logger
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
