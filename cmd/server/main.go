// Package main provides the entry point for the tutormatch API server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lcc360/tutormatch/internal/config"
	"github.com/lcc360/tutormatch/internal/db"
	gormstore "github.com/lcc360/tutormatch/internal/db/gorm"
	"github.com/lcc360/tutormatch/internal/db/sqlite"
	"github.com/lcc360/tutormatch/internal/server"
)

var Version = "dev"

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	log.Info().
		Str("version", Version).
		Str("driver", cfg.Driver).
		Msg("Starting tutormatch API server")

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}

	svc := server.NewService(Version, cfg, store)
	if err := svc.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start service")
	}

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := svc.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown error")
	}

	log.Info().Msg("Server shutdown complete")
}

// openStore connects the configured database backend.
func openStore(cfg *config.Config) (db.Store, error) {
	if cfg.Driver == config.DriverPostgres {
		return gormstore.NewStore(gormstore.Config{
			DSN:      cfg.DatabaseURL,
			MaxConns: cfg.MaxConns,
			LogLevel: gormlogger.Silent,
		})
	}
	return sqlite.NewStore(sqlite.StoreConfig{
		Path:     cfg.SQLitePath,
		MaxConns: cfg.MaxConns,
	})
}
