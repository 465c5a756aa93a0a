// Package main provides the entry point for the TuneGrab music API gateway.
// @title TuneGrab Music API
// @version 1.0
// @description A REST gateway over YouTube Music metadata and media extraction: search, song lookup, trending charts, recommendations and direct audio stream resolution.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.example.com/support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tunegrab/tunegrab/docs" // Import for swagger docs
	"github.com/tunegrab/tunegrab/internal/api/handlers"
	"github.com/tunegrab/tunegrab/internal/api/router"
	"github.com/tunegrab/tunegrab/internal/config"
	"github.com/tunegrab/tunegrab/internal/services/extractor"
	"github.com/tunegrab/tunegrab/internal/services/facade"
	"github.com/tunegrab/tunegrab/internal/services/innertube"
	"github.com/tunegrab/tunegrab/internal/services/ytmusic"
	"github.com/tunegrab/tunegrab/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting TuneGrab music API gateway")

	// Both innertube transports share one HTTP client so connection
	// pooling and the upstream timeout apply uniformly.
	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}

	opts := []innertube.Option{
		innertube.WithHTTPClient(httpClient),
		innertube.WithGeoLocation(cfg.Upstream.GeoLocation),
	}
	if cfg.Upstream.YouTubeCookie != "" {
		opts = append(opts, innertube.WithCookie(cfg.Upstream.YouTubeCookie))
	}

	metadataClient := ytmusic.NewClient(opts...)
	extractorClient := extractor.NewClient(opts...)

	svc := facade.New(metadataClient, extractorClient, cfg.Limits, cfg.Upstream.Timeout)

	musicHandler := handlers.NewMusicHandler(svc)
	browseHandler := handlers.NewBrowseHandler(svc)
	healthHandler := handlers.NewHealthHandler(svc)

	r := router.NewRouter(cfg, musicHandler, browseHandler, healthHandler)

	go func() {
		logger.Infof("Starting server on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := r.Start(); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// No standing connections to drain; the providers are plain HTTP
	// clients whose in-flight requests finish with the process.
	logger.Info("Server shutdown complete")
}
