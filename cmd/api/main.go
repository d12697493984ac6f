// Command api is the Fantasy MotoGP data API server: the JSON bridge between
// the snapshot pipeline and the dashboard.
//
// Usage:
//
//	fantasy-api
//	API_PORT=8080 fantasy-api
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

	"github.com/fantasymotogp/fantasy-data/internal/api"
	"github.com/fantasymotogp/fantasy-data/internal/config"
	"github.com/fantasymotogp/fantasy-data/internal/dataset"
	"github.com/fantasymotogp/fantasy-data/internal/snapshot"
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

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Snapshot store + aggregate facade
	client := snapshot.NewClient(cfg.FetchRequestsPerMinute, logger)
	store := snapshot.New(cfg.SnapshotDir, client, logger)
	svc := dataset.NewService(cfg, store, logger)

	// Create router
	router := api.NewRouter(svc, store, cfg, logger)

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
		logger.Info("Starting Fantasy MotoGP Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"snapshot_dir", cfg.SnapshotDir,
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
