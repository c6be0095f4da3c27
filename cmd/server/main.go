package main

import (
	"context"
	"fmt"

	"github.com/associo/tallysync/internal/config"
	httphandler "github.com/associo/tallysync/internal/handler/http"
	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/internal/metrics"
	"github.com/associo/tallysync/internal/server"
	"github.com/associo/tallysync/internal/service"
	"github.com/associo/tallysync/internal/store"
	"github.com/associo/tallysync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("tally-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	repos, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	m := metrics.New(nil)

	usageWorker := workers.NewUsageWorker(service.NewUsageService(repos.UsageRepository), cfg.Workers.UsageQueueSize, log)
	usageWorker.Run(ctx)

	services := service.NewServices(cfg.App, repos, usageWorker, m)
	handler := httphandler.NewHandler(services, cfg.App.Version, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log, usageWorker.Stop)
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
