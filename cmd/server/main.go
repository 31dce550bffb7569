package main

import (
	"context"
	"os"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/handler"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/server"
	"github.com/MKhiriev/brand-showcase/internal/service"
	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/internal/throttle"
	"github.com/MKhiriev/brand-showcase/internal/workers"
	"github.com/MKhiriev/brand-showcase/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Fprint(os.Stdout)

	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	log := logger.NewLogger("brand-showcase-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Err(err).Msg("invalid log level")
		return err
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("images_backend", cfg.Storage.Images.Backend).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return err
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	loginThrottle := throttle.NewMemoryLoginThrottle(cfg.Auth.MaxLoginAttempts, cfg.Auth.LockoutWindow)

	services, err := service.NewServices(storages, loginThrottle, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return err
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	background := workers.NewWorkers(services, loginThrottle, cfg.Workers, log)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	return srv.RunServer()
}
