// Package maintenance runs periodic background tasks as Go tickers.
// All scheduled work is driven from Go since the API is already a
// persistent, long-running service.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/albapepper/drawcert/internal/db"
	"github.com/albapepper/drawcert/internal/store"
)

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	CleanupInterval time.Duration // Purge cadence for old validation runs
	RunRetention    time.Duration // How long completed runs are kept
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		CleanupInterval: 1 * time.Hour,
		RunRetention:    90 * 24 * time.Hour,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, pool *db.Pool, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"cleanup", cfg.CleanupInterval,
		"retention", cfg.RunRetention)

	// Cleanup: purge validation runs past their retention window
	if cfg.CleanupInterval > 0 {
		t := time.NewTicker(cfg.CleanupInterval)
		defer t.Stop()
		go runLoop(ctx, t.C, "cleanup", func() { cleanup(ctx, pool, cfg.RunRetention, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, name string, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

// cleanup removes validation runs older than the retention window.
func cleanup(ctx context.Context, pool *db.Pool, retention time.Duration, logger *slog.Logger) {
	purged, err := store.PurgeOldRuns(ctx, pool, retention)
	if err != nil {
		logger.Warn("Cleanup: failed to purge old runs", "error", err)
	} else if purged > 0 {
		logger.Info("Cleanup: purged old runs", "count", purged)
	}
}
