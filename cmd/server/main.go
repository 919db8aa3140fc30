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

	"github.com/neexbeast/travel-atlas/internal/api"
	"github.com/neexbeast/travel-atlas/internal/cache"
	"github.com/neexbeast/travel-atlas/internal/config"
	"github.com/neexbeast/travel-atlas/internal/mirror"
	"github.com/neexbeast/travel-atlas/internal/session"
	"github.com/neexbeast/travel-atlas/internal/storage"
	"github.com/neexbeast/travel-atlas/internal/travel"
	"github.com/neexbeast/travel-atlas/migrations"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx := context.Background()

	// Connect to Redis.
	redisClient, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	// Load the catalog: database, upstream mirror, dataset file, built-in set.
	var dbPing pinger
	var catalog *travel.Catalog
	switch {
	case cfg.DatabaseURL != "":
		pool, err := storage.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		if err := storage.RunMigrations(ctx, pool, migrations.FS); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied")

		catalog, err = travel.Load(ctx, storage.NewRepository(pool))
		if err != nil {
			return err
		}
		dbPing = pool
	case cfg.CatalogURL != "":
		catalog, err = travel.Load(ctx, mirror.NewClient(cfg.CatalogURL))
		if err != nil {
			return err
		}
		log.Info("mirroring upstream catalog", "upstream", cfg.CatalogURL)
	case cfg.DatasetFile != "":
		catalog, err = travel.LoadFile(cfg.DatasetFile)
		if err != nil {
			return err
		}
	default:
		catalog = travel.Reference()
	}

	years := catalog.YearRange()
	log.Info("catalog ready",
		"destinations", len(catalog.Destinations()),
		"journeys", len(catalog.Journeys()),
		"min_year", years.Min,
		"max_year", years.Max,
	)
	if cfg.BearerToken == "" {
		log.Warn("BEARER_TOKEN not set, session routes are unauthenticated")
	}

	// Wire dependencies.
	machine := session.NewMachine(catalog)
	sessions := cache.NewCacheWithTTL(redisClient, cfg.SessionTTL)
	handlers := api.NewHandlers(machine, sessions, log)

	router := api.NewRouter(handlers, api.RouterConfig{
		Token:       cfg.BearerToken,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
	}, dbPing, cache.Pinger{Client: redisClient}, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}
