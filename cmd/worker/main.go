package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"argus-worker-go/internal/api"
	"argus-worker-go/internal/config"
	"argus-worker-go/internal/logging"
	"argus-worker-go/internal/services/alerting"
	"argus-worker-go/internal/services/analysis"
	"argus-worker-go/internal/services/messaging"
	"argus-worker-go/internal/services/situation"
	"argus-worker-go/internal/services/status"
	"argus-worker-go/internal/services/vision"
)

// @title Argus Analysis Worker API
// @version 1.0.0
// @description Camera frame analysis worker: object detection via Cloud Vision, situation summaries and deduplicated alerts
// @BasePath /
func main() {
	// Setup structured logging
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg := config.Load()

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Optionally tee logs into the embedded Logdy UI
	if cfg.LogdyEnabled {
		if writer, url, err := logging.StartLogdy(cfg); err == nil {
			log.Logger = log.Output(io.MultiWriter(zerolog.ConsoleWriter{Out: os.Stderr}, writer))
			log.Info().Str("url", url).Msg("Log tee to Logdy enabled")
		} else {
			log.Warn().Err(err).Msg("Failed to start Logdy, continuing with console logging")
		}
	}

	log.Info().
		Str("worker_id", cfg.WorkerID).
		Str("version", cfg.Version).
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Bool("alerts_enabled", cfg.AlertsEnabled).
		Msg("Starting Argus analysis worker")

	ctx := context.Background()

	// NATS is optional: without it admitted alerts are only returned
	// in API responses.
	var publisher *messaging.Service
	if cfg.AlertsEnabled {
		publisher, err = messaging.NewService(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("NATS unavailable, alert publishing disabled")
			publisher = nil
		}
	}

	// Vision provider is optional at startup: analysis endpoints
	// answer 503 until it is configured.
	visionClient, err := vision.NewClient(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Vision provider unavailable, analysis endpoints disabled")
		visionClient = nil
	}

	history := alerting.NewHistory(cfg.AlertCooldown, cfg.AlertRetention)

	var alertSvc *alerting.Service
	if publisher != nil {
		alertSvc = alerting.NewService(cfg, history, publisher)
	} else {
		alertSvc = alerting.NewService(cfg, history, nil)
	}

	analysisSvc := analysis.NewService(situation.NewAnalyzer(), alertSvc)
	statusSvc := status.NewService(cfg.CameraStatusTTL)

	server := api.NewServer(cfg, visionClient, analysisSvc, statusSvc)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutdown signal received")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	} else {
		log.Info().Msg("Server shutdown complete")
	}

	if publisher != nil {
		if err := publisher.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("NATS shutdown failed")
		}
	}
}
