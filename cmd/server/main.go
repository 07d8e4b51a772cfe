package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/handler"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/server"
	"github.com/MKhiriev/go-web-scaffold/internal/service"
	"github.com/MKhiriev/go-web-scaffold/internal/store"
	"github.com/MKhiriev/go-web-scaffold/models"
)

const role = "go-web-scaffold-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	bootstrap := logger.NewLogger(role)
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootstrap.Err(err).Msg("error getting configs")
		return err
	}

	log, err := logger.NewLoggerWithSink(role, cfg.Logger)
	if err != nil {
		bootstrap.Err(err).Msg("error creating logger")
		return err
	}
	defer log.Close()

	if cfg.App.Version == "" && buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("mode", cfg.Mode).
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Bool("development", cfg.IsDevelopment()).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return err
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return err
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with an error")
		return err
	}
	return nil
}
