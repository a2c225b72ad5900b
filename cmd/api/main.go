package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"sun-to-sort/internal/api"
	"sun-to-sort/internal/api/middleware"
	"sun-to-sort/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := log.Logger

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	catalogPath := data.GetDefaultCatalogPath()
	catalog, err := data.LoadCatalogOrDefault(catalogPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", catalogPath).Msg("Failed to load waste catalog")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := api.NewRouter(api.Options{
		Catalog:   catalog,
		PresetDir: data.GetDefaultPresetDir(),
		CORS:      middleware.CORSOptions(logger),
		Logger:    logger,
		Registry:  registry,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Shutdown failed")
		}
		close(shutdownDone)
	}()

	logger.Info().Str("addr", server.Addr).Int("categories", len(catalog.Categories)).Msg("Starting API server")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("Server failed")
	}
	<-shutdownDone
}
