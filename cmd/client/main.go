package main

import (
	"fmt"

	"github.com/adenikin/go-note-keeper/internal/adapter"
	"github.com/adenikin/go-note-keeper/internal/client"
	"github.com/adenikin/go-note-keeper/internal/config"
	"github.com/adenikin/go-note-keeper/internal/crypto"
	"github.com/adenikin/go-note-keeper/internal/logger"
	"github.com/adenikin/go-note-keeper/internal/service"
	"github.com/adenikin/go-note-keeper/internal/store"
	"github.com/adenikin/go-note-keeper/internal/tui"
	"github.com/adenikin/go-note-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-note-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	cipher := crypto.NewContentCipher(
		crypto.WithMinPasswordLength(cfg.App.MinPassphraseLength),
	)

	services := service.NewClientServices(localStorage, serverAdapter, cipher)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	backgroundWorkers := workers.New(
		workers.NewSyncWorker(services.SyncJob, cfg.Workers.SyncInterval),
	)

	app, err := client.NewApp(services, ui, backgroundWorkers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
