package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/wizmcp/pkg/api"
	"github.com/urmzd/wizmcp/pkg/config"
	"github.com/urmzd/wizmcp/pkg/db"
	"github.com/urmzd/wizmcp/pkg/wiz"
	"github.com/urmzd/wizmcp/pkg/wiz/schema"

	_ "github.com/urmzd/wizmcp/docs"
)

// @title           wizmcp API
// @version         1.0
// @description     REST API for controlling a WiZ smart bulb over UDP

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to command log database (default: ~/.config/wizmcp/wizmcp.db)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	log.Info().
		Str("host", cfg.BulbHost).
		Int("port", cfg.BulbPort).
		Str("api_address", cfg.APIAddress).
		Msg("Configuration loaded")

	transport := wiz.NewTransport(cfg.BulbHost, cfg.BulbPort, cfg.Timeout)

	// Open the command log; the API runs without it if unavailable
	history, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Warn().Err(err).Msg("Command log unavailable, continuing without history")
		history = nil
	} else {
		if err := history.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}

		log.Info().Str("path", history.Path()).Msg("Command log opened")
		transport.SetRecorder(history)
	}

	bulb := wiz.NewBulb(transport)
	validator := schema.NewValidator()

	// Create the API router
	router := api.NewRouter(bulb, validator, history)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		if history != nil {
			if err := history.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close database")
			}
		}
		os.Exit(0)
	}()

	// Start server
	log.Info().Str("address", cfg.APIAddress).Msg("Starting API server")

	if err := router.Run(cfg.APIAddress); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
