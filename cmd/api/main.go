// ABOUTME: Main entry point for the Mangawatch API server
// ABOUTME: Wires together storage, extraction, tracking, scheduler and HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mangawatch/api"
	"mangawatch/api/handlers"
	"mangawatch/core/extract"
	"mangawatch/core/interfaces"
	"mangawatch/core/tracker"
	stdhttp "mangawatch/infrastructure/http/standard"
	"mangawatch/infrastructure/logger/structured"
	"mangawatch/infrastructure/notifier/ntfy"
	"mangawatch/infrastructure/storage/memory"
	"mangawatch/infrastructure/storage/redis"
	"mangawatch/infrastructure/storage/sqlite"
	"mangawatch/pkg/config"
	"mangawatch/scheduler"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewLogger(cfg.LogLevel)
	logger.Info("Starting Mangawatch API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"storage_type": cfg.Storage.Type,
		"site":         cfg.Site.ID,
	})

	var store interfaces.Storage
	switch cfg.Storage.Type {
	case "redis":
		redisStore, err := redis.NewClient(cfg.Storage.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
		logger.Info("Using Redis storage", map[string]interface{}{
			"address": cfg.Storage.Redis.Address,
		})
	case "memory":
		store = memory.NewClient()
		logger.Warn("Using memory storage, state will not survive restarts", nil)
	default:
		sqliteStore, err := sqlite.NewClient(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite storage: %v", err)
		}
		defer sqliteStore.Close()
		store = sqliteStore
		logger.Info("Using SQLite storage", map[string]interface{}{
			"path": cfg.Storage.SQLitePath,
		})
	}

	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.Check.FetchTimeoutSeconds) * time.Second)
	notifier := ntfy.NewNotifier(cfg.Notify.NtfyTopic, time.Duration(cfg.Notify.TimeoutSeconds)*time.Second)

	deps := interfaces.Dependencies{
		Storage:    store,
		HTTPClient: httpClient,
		Logger:     logger,
		Notifier:   notifier,
	}

	registry := extract.NewRegistry()
	siteExtractor, err := extract.NewMadaraExtractor(deps, cfg.Site.ID, cfg.Site.BaseURL, cfg.Site.Name)
	if err != nil {
		log.Fatalf("Invalid site base URL: %v", err)
	}
	registry.Register(siteExtractor)

	extractService := extract.NewService(deps, registry)
	trackerService := tracker.NewService(deps, extractService, time.Duration(cfg.Check.PacingSeconds)*time.Second)

	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Duration(cfg.Server.RateWindowSeconds) * time.Second,
	})

	handlers.NewItemHandler(trackerService).RegisterRoutes(humaAPI)
	handlers.NewLedgerHandler(trackerService).RegisterRoutes(humaAPI)
	handlers.NewSettingsHandler(trackerService).RegisterRoutes(humaAPI)
	handlers.NewSnapshotHandler(trackerService).RegisterRoutes(humaAPI)
	handlers.NewCheckHandler(trackerService).RegisterRoutes(humaAPI)

	sched := scheduler.New(trackerService, logger)
	sched.Start()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...", nil)
	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
