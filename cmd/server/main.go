package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/server"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("todo-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	log.Debug().Any("server", cfg.Server).Str("driver", cfg.Storage.DB.Driver).Msg("received configs")

	// a signal during bootstrap aborts the index wait
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	db, report, err := store.Bootstrap(ctx, cfg.Storage.DB, log)
	stop()
	if err != nil {
		log.Error().Stack().Err(err).Msg("error bootstrapping store")
		return 1
	}
	defer db.Close()

	log.Info().
		Bool("database_created", report.DatabaseCreated).
		Bool("table_created", report.TableCreated).
		Bool("index_created", report.IndexCreated).
		Msg("store is ready")

	services := service.NewServices(store.NewStorages(db, log), log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating handlers")
		return 1
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return 1
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return 1
	}

	return 0
}
