package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/config"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	red "github.com/povarna/generative-ai-agents/resume-ranker/internal/redis"
	streamredis "github.com/povarna/generative-ai-agents/resume-ranker/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	data := flag.StringP("data", "d", "", "Inline JSON AnalysisRequest")
	jd := flag.String("jd", "", "Job description text")
	resumes := flag.String("resumes", "", "Resume texts joined by ---NEXT---")
	requestID := flag.String("request-id", "", "Request ID (random UUID when empty)")
	streamName := flag.String("stream", "", "Request stream name (config value when empty)")
	flag.Parse()

	if *data == "" && (*jd == "" || *resumes == "") {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>' | producer --jd '<text>' --resumes '<a---NEXT---b>'")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	envelope, err := buildEnvelope(*data, *jd, *resumes, *requestID)
	if err != nil {
		log.Error().Err(err).Msg("Invalid request")
		os.Exit(1)
	}

	if err := run(envelope, *streamName); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func buildEnvelope(data, jd, resumes, requestID string) (models.AnalysisEnvelope, error) {
	envelope := models.AnalysisEnvelope{RequestID: requestID}

	if data != "" {
		if err := json.Unmarshal([]byte(data), &envelope.AnalysisRequest); err != nil {
			return envelope, fmt.Errorf("decode -d payload: %w", err)
		}
	} else {
		envelope.AnalysisRequest = models.NewAnalysisRequest(jd, resumes)
	}

	if err := envelope.Validate(); err != nil {
		return envelope, err
	}

	if envelope.RequestID == "" {
		envelope.RequestID = uuid.NewString()
	}
	return envelope, nil
}

func run(envelope models.AnalysisEnvelope, streamName string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if streamName == "" {
		streamName = cfg.Stream.RequestStream
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, red.ConnectOptions{
		Addr:       cfg.Stream.RedisAddr,
		Password:   cfg.Stream.RedisPassword,
		MaxRetries: 3,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	publisher := streamredis.NewPublisher(client, streamName)
	id, err := publisher.Publish(ctx, envelope)
	if err != nil {
		return err
	}

	log.Info().Str("stream", streamName).Str("id", id).Str("request_id", envelope.RequestID).Msg("Published successfully!")
	return nil
}
