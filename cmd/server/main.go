package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-garden-keeper/internal/config"
	"github.com/MKhiriev/go-garden-keeper/internal/handler"
	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/metrics"
	"github.com/MKhiriev/go-garden-keeper/internal/server"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/store"
	"github.com/MKhiriev/go-garden-keeper/internal/workers"
	"github.com/MKhiriev/go-garden-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("garden-server")
	if err := run(build, log); err != nil {
		log.Error().Err(err).Msg("garden-server stopped with error")
		os.Exit(1)
	}
}

func run(build models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetServerConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	ctx := context.Background()

	kv, err := store.NewKeyValueStore(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating key-value store: %w", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Err(err).Msg("closing key-value store")
		}
	}()

	registry := metrics.NewRegistry()

	services, err := service.NewServices(kv, *cfg.StructuredConfig, build, registry, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	services.ThemeManager.Init(ctx)
	services.AccountManager.Init(ctx)
	if err = services.AccountManager.WaitReady(ctx); err != nil {
		return fmt.Errorf("error loading session: %w", err)
	}
	_, active := services.AccountManager.Current()
	registry.SetSessionActive(active)

	handlers, err := handler.NewHandlers(services, registry, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	bg := workers.NewWorkers(log)
	if gc, ok := kv.(workers.GarbageCollector); ok && cfg.Storage.GCInterval > 0 {
		bg.Add(workers.NewGCWorker(gc, cfg.Storage.GCInterval, registry, log))
	}

	srv, err := server.NewServer(handlers, bg, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
