package main

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/ai-one-api/internal/config"
	"github.com/MKhiriev/ai-one-api/internal/crypto"
	"github.com/MKhiriev/ai-one-api/internal/handler"
	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/server"
	"github.com/MKhiriev/ai-one-api/internal/service"
	"github.com/MKhiriev/ai-one-api/internal/store"
	"github.com/MKhiriev/ai-one-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// connectTimeout bounds the initial database connection and ping.
const connectTimeout = 15 * time.Second

func main() {
	buildInfo := newBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("ai-one-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLoggerWithLevel("ai-one-server", cfg.App.LogLevel)
	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Str("app_version", cfg.App.Version).
		Msg("starting")

	key, err := crypto.ParseEncryptionKey(cfg.App.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading encryption key")
	}
	cipher, err := crypto.NewFieldCipher(key, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating field cipher")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cipher, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
