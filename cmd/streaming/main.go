package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/setup"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/stream"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := setup.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log.Logger = logger.NewConsole(cfg.Log.Level)
	appLogger := log.Logger

	deps, err := setup.Wire(cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	consumer, err := stream.NewStreamConsumer(ctx, stream.NewStreamConfig(cfg.Stream), deps.Ranker, deps.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}
	defer func() {
		if err := consumer.Stop(); err != nil {
			log.Warn().Err(err).Msg("Failed to stop consumer cleanly")
		}
	}()

	// Setup consumer
	if err := consumer.Setup(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to setup consumer")
		return
	}

	// Start consumer
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("Consumer stopped with error")
		}
	}()

	// Wait for context to be done
	<-ctx.Done()
	log.Info().Msg("Shutting down...")
	<-done

	log.Info().Msg("Resume Ranker worker stopped")
}
