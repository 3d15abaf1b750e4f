// Package main is the entry point for the Bazaar market data server.
// It serves deterministic synthetic quotes, analysis, portfolio and fund data
// for the Indian equities universe over HTTP and a websocket tick stream.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/bazaar/internal/config"
	"github.com/aristath/bazaar/internal/di"
	"github.com/aristath/bazaar/internal/server"
	"github.com/aristath/bazaar/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting Bazaar")

	// Databases, repositories, services and jobs. Settings overrides are
	// applied to cfg inside Wire before any client is built.
	container, err := di.Wire(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer container.Close()

	srv := server.New(server.Config{
		Log:       log,
		Port:      cfg.Port,
		DevMode:   cfg.DevMode,
		Container: container,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Prime the movers snapshot so the first stream subscriber gets data
	// before the first scheduled tick.
	if err := container.Scheduler.RunByName("market_tick"); err != nil {
		log.Warn().Err(err).Msg("Initial market tick failed")
	}

	container.Scheduler.Start()
	log.Info().Strs("jobs", container.Scheduler.JobNames()).Msg("Scheduler started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	container.Scheduler.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
