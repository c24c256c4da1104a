package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/asset-management/internal/cache"
	"github.com/MKhiriev/asset-management/internal/config"
	"github.com/MKhiriev/asset-management/internal/handler"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/metrics"
	"github.com/MKhiriev/asset-management/internal/server"
	"github.com/MKhiriev/asset-management/internal/service"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("asset-management-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	registry := metrics.NewRegistry()

	statusCache, cacheCloser, err := cache.New(ctx, cfg.Storage.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating user status cache")
	}
	defer cacheCloser.Close()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(
		store.NewStorages(db, log),
		cache.WithMetrics(statusCache, registry),
		*cfg,
		buildInfo,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
