package main

import (
	"context"
	"fmt"

	"github.com/ametelin/veriauth/internal/config"
	httphandler "github.com/ametelin/veriauth/internal/handler/http"
	"github.com/ametelin/veriauth/internal/logger"
	"github.com/ametelin/veriauth/internal/mailer"
	"github.com/ametelin/veriauth/internal/server"
	"github.com/ametelin/veriauth/internal/service"
	"github.com/ametelin/veriauth/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("veriauth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	dispatcher := mailer.NewDispatcher(mailer.NewResendSender(cfg.Mail), cfg.Mail, logger.NewLogger("mail-dispatcher"))
	go dispatcher.Run()

	services := service.NewServices(storages, dispatcher, cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	// the HTTP server is down; let queued verification emails drain
	dispatcher.Shutdown()
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
