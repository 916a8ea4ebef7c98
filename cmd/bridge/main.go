package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/wizmcp/pkg/bridge"
	"github.com/urmzd/wizmcp/pkg/config"
	"github.com/urmzd/wizmcp/pkg/wiz"
)

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("host", cfg.BulbHost).
		Int("port", cfg.BulbPort).
		Str("broker", cfg.MQTT.Broker).
		Msg("Configuration loaded")

	transport := wiz.NewTransport(cfg.BulbHost, cfg.BulbPort, cfg.Timeout)
	bulb := wiz.NewBulb(transport)

	b, err := bridge.New(cfg.MQTT, bulb)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bridge")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("Starting Home Assistant bridge")

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Bridge failed")
	}

	log.Info().Msg("Shutting down...")
}
