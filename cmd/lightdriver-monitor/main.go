package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/light-driver/internal/api"
	"github.com/wheelibin/light-driver/internal/config"
	"github.com/wheelibin/light-driver/internal/constants"
	"github.com/wheelibin/light-driver/internal/driver"
	"github.com/wheelibin/light-driver/internal/events"
	"github.com/wheelibin/light-driver/internal/host"
	"github.com/wheelibin/light-driver/internal/integration"
	"github.com/wheelibin/light-driver/internal/models"
	"github.com/wheelibin/light-driver/internal/registry"
	"github.com/wheelibin/light-driver/internal/repos"
	"github.com/wheelibin/light-driver/internal/tui"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {

	// read the config files
	cfg, err := config.ReadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// the terminal is owned by the UI, so log to a file
	logger := log.NewWithOptions(&lumberjack.Logger{
		Filename: cfg.LogFile,
		MaxAge:   3,
	}, log.Options{
		Level:      cfg.Level(),
		TimeFormat: "2006/01/02 15:04:05",
	})
	logger.Info("light-driver monitor starting")

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

	ui := tui.NewMonitorTUI(metadata.Name["en"], nil)
	refresh := func() {
		entities, err := reg.ConfiguredEntities()
		if err != nil {
			logger.Error("unable to list entities", "err", err)
			return
		}
		ui.RefreshEntities(entities)
	}
	app.OnChange(func(models.EntityChange) { refresh() })
	rt.OnSubscribe(func([]string) { refresh() })
	rt.OnUnsubscribe(func([]string) { refresh() })

	server := api.NewServer(logger, rt, reg, publisher)
	go func() {
		if err := server.Start(cfg.ListenAddress); err != nil {
			logger.Error("HTTP server failed", "err", err)
			ui.Quit()
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go app.Run(ctx)

	// run the terminal UI until the user quits
	if err := ui.Run(); err != nil {
		logger.Error("terminal UI failed", "err", err)
	}

	// cleanup before exit
	cancel()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "err", err)
	}
	logger.Info("light-driver monitor is closing")
}
