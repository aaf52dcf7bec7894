package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/featureflag"
	"github.com/MKhiriev/go-storefront/internal/handler"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/metrics"
	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/internal/server"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/workers"
	"github.com/MKhiriev/go-storefront/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("storefront-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	var searchEngine adapter.SearchEngine
	if cfg.Search.Address != "" {
		searchEngine, err = adapter.NewHTTPSearchEngine(cfg.Search, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating search engine client")
		}
	}

	services, err := service.NewServices(storages, searchEngine, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	var schemas query.Schemas
	if cfg.Server.QuerySchemaFile != "" {
		schemas, err = query.LoadSchemas(cfg.Server.QuerySchemaFile)
		if err != nil {
			log.Fatal().Err(err).Msg("error loading query schemas")
		}
	}

	flags := featureflag.NewRouter(featureflag.Registry, cfg.App.FeatureFlags)
	m := metrics.NewMetrics()

	handlers, err := handler.NewHandlers(services, flags, schemas, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	w := workers.NewWorkers(ctx, services, m, cfg.Workers, log)

	srv, err := server.NewServer(handlers, w, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
