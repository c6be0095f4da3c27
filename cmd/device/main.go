package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/associo/tallysync/internal/config"
	"github.com/associo/tallysync/internal/device"
	"github.com/associo/tallysync/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewDeviceLogger("tally-device")
	cfg, err := config.GetDeviceConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// Flags belong to the config layer; what remains is the command and
	// its own parameters.
	args := flag.Args()
	command := "daemon"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	app, err := device.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init device agent error")
	}

	runErr := app.Run(ctx, command, args)
	if closeErr := app.Close(); closeErr != nil {
		log.Error().Err(closeErr).Msg("error closing local store")
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("device agent error")
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		os.Exit(1)
	}
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
