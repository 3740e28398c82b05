package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/handler"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/server"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/internal/store"
	"github.com/MKhiriev/internship-tracker/internal/workers"
	"github.com/MKhiriev/internship-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("tracker-server", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("tracker-server", cfg.App.LogLevel)
	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log, service.WithBuildInfo(build))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg, err := workers.NewWorkers(cfg, services.Feed, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
		storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Println(info.String())
}
