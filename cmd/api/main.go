// Command api is the Drawcert validation API server.
//
// Usage:
//
//	drawcert-api
//	API_PORT=8080 drawcert-api
//	FORMAT_FILE=formats/league36.json drawcert-api

// @title Drawcert API
// @version 1.0.0
// @description League-phase draw certification service. Submit a club list and a candidate fixture list and receive a structural and rulebook verdict with full diagnostics; persisted runs keep an audit trail of every verdict.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Drawcert
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/drawcert/internal/api"
	"github.com/albapepper/drawcert/internal/cache"
	"github.com/albapepper/drawcert/internal/config"
	"github.com/albapepper/drawcert/internal/db"
	"github.com/albapepper/drawcert/internal/loader"
	"github.com/albapepper/drawcert/internal/maintenance"
	"github.com/albapepper/drawcert/internal/metrics"
	"github.com/albapepper/drawcert/internal/tournament"

	_ "github.com/albapepper/drawcert/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Tournament format the service validates against
	format := tournament.Default()
	if cfg.FormatFile != "" {
		format, err = loader.Format(cfg.FormatFile)
		if err != nil {
			logger.Error("Failed to load tournament format", "error", err)
			os.Exit(1)
		}
		logger.Info("Loaded tournament format",
			"file", cfg.FormatFile,
			"clubs", format.TotalClubs,
			"matchdays", format.Matchdays)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Connect to database
	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Prometheus collectors
	m := metrics.New()

	// Start maintenance tickers (validation run retention)
	go maintenance.Start(ctx, pool, maintenance.Config{
		CleanupInterval: cfg.CleanupInterval,
		RunRetention:    cfg.RunRetention,
	}, logger)

	// Create router
	router := api.NewRouter(pool, appCache, cfg, format, m)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Drawcert API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
