package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"solar-panel-backend/config"
	"solar-panel-backend/internal/api"
	"solar-panel-backend/internal/logging"
	"solar-panel-backend/internal/registry"
	"solar-panel-backend/internal/sampler"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("failed to load configuration")
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Pretty)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure logger")
	}
	logger.Info().Str("path", configPath).Msg("configuration loaded")

	reg, err := registry.New(cfg.Panels.Count, cfg.Panels.DefectiveID)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build panel registry")
	}

	smp, err := sampler.New(cfg.Sampler.Strategy, cfg.Sampler.Location)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build energy sampler")
	}
	logger.Info().
		Int("panels", reg.Len()).
		Int("defective_id", cfg.Panels.DefectiveID).
		Str("strategy", cfg.Sampler.Strategy).
		Str("timezone", cfg.Sampler.Location.String()).
		Msg("simulation ready")

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: api.NewHTTPHandler(cfg, reg, smp, logger),
	}

	// Start the server in a goroutine
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Info().Msg("shutdown signal received, stopping server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server Shutdown")
	}

	logger.Info().Msg("server gracefully stopped")
}
