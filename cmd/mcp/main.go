package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/wizmcp/pkg/config"
	"github.com/urmzd/wizmcp/pkg/db"
	wizmcp "github.com/urmzd/wizmcp/pkg/mcp"
	"github.com/urmzd/wizmcp/pkg/wiz"
	"github.com/urmzd/wizmcp/pkg/wiz/schema"
)

func main() {
	// Logging must go to stderr — stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to command log database (default: ~/.config/wizmcp/wizmcp.db)")
	noHistory := flag.Bool("no-history", false, "Disable the command log")
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
		Dur("timeout", cfg.Timeout).
		Msg("Configuration loaded")

	transport := wiz.NewTransport(cfg.BulbHost, cfg.BulbPort, cfg.Timeout)

	// Open the command log; the server runs without it if unavailable
	var history *db.DB
	if !*noHistory {
		history, err = db.Open(cfg.DBPath)
		if err != nil {
			log.Warn().Err(err).Msg("Command log unavailable, continuing without history")
		} else {
			defer func() {
				if err := history.Close(); err != nil {
					log.Error().Err(err).Msg("Failed to close database")
				}
			}()

			if err := history.Migrate(ctx); err != nil {
				log.Fatal().Err(err).Msg("Failed to run database migrations")
			}

			log.Info().Str("path", history.Path()).Msg("Command log opened")
			transport.SetRecorder(history)
		}
	}

	bulb := wiz.NewBulb(transport)
	validator := schema.NewValidator()

	// Create and start MCP server
	mcpServer := wizmcp.NewServer(bulb, validator, history)

	log.Info().Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
