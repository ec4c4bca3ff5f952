package main

import (
	"context"
	"fmt"

	"github.com/aidocs/doc-browser/internal/catalog"
	"github.com/aidocs/doc-browser/internal/config"
	httphandler "github.com/aidocs/doc-browser/internal/handler/http"
	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/internal/oauth"
	"github.com/aidocs/doc-browser/internal/server"
	"github.com/aidocs/doc-browser/internal/service"
	"github.com/aidocs/doc-browser/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("doc-browser-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	documentCatalog := catalog.New(cfg.Catalog, log)
	providers := oauth.NewRegistry(cfg.OAuth, cfg.App.ProviderTimeout, log)

	services := service.NewServices(storages, providers, documentCatalog, cfg, log)

	handler := httphandler.NewHandler(services, buildVersion, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
