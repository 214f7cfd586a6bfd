package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/light-driver/internal/api"
	"github.com/wheelibin/light-driver/internal/config"
	"github.com/wheelibin/light-driver/internal/constants"
	"github.com/wheelibin/light-driver/internal/driver"
	"github.com/wheelibin/light-driver/internal/events"
	"github.com/wheelibin/light-driver/internal/host"
	"github.com/wheelibin/light-driver/internal/integration"
	"github.com/wheelibin/light-driver/internal/registry"
	"github.com/wheelibin/light-driver/internal/repos"
)

func main() {

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		ReportCaller:    true,
	})
	logger.Info("light-driver starting")

	// read the config files
	cfg, err := config.ReadConfig()
	if err != nil {
		logger.Fatal(err)
	}
	logger.SetLevel(cfg.Level())

	metadata, err := config.ReadDriverMetadata(cfg.DriverMetadata)
	if err != nil {
		logger.Fatal(err)
	}

	// create/wire up services
	db, err := repos.OpenMemoryDB()
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	entityRepo, err := repos.NewEntityRepo(logger, db)
	if err != nil {
		logger.Fatal(err)
	}

	reg := registry.NewRegistry(logger, entityRepo)
	publisher := events.NewPublisher(logger, false)
	defer publisher.Close()
	rt := host.NewRuntime(logger, *metadata, reg, publisher)
	app := integration.NewIntegration(logger, driver.NewDriver(logger, reg, rt), reg, rt, publisher)

	if err := app.Initialise(); err != nil {
		logger.Fatal("unable to register entities", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(logger, rt, reg, publisher)
	go func() {
		if err := server.Start(cfg.ListenAddress); err != nil {
			logger.Error("HTTP server failed", "err", err)
			stop()
		}
	}()

	// start the main application loop
	go app.Run(ctx)

	<-ctx.Done()

	// cleanup before exit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "err", err)
	}
	logger.Info("light-driver is closing")
}
