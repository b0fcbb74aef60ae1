package stream

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/config"
	red "github.com/povarna/generative-ai-agents/resume-ranker/internal/redis"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/stream/redis"
	"github.com/rs/zerolog"
)

type StreamConfig struct {
	Provider    string // only redis today
	RedisConfig *redis.RedisStreamConfig
}

// NewStreamConfig maps the file/env configuration onto provider settings.
func NewStreamConfig(cfg config.StreamConfig) *StreamConfig {
	redisConfig := redis.NewRedisStreamConfig(
		cfg.RedisAddr,
		cfg.RedisPassword,
		cfg.RequestStream,
		cfg.ResultStream,
		cfg.Group,
		cfg.ConsumerName,
	)
	redisConfig.MaxRetries = cfg.MaxRetries

	return &StreamConfig{
		Provider:    cfg.Provider,
		RedisConfig: redisConfig,
	}
}

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	analyzer redis.Analyzer,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := red.ConnectRedis(ctx, red.ConnectOptions{
			Addr:       cfg.RedisConfig.RedisAddr,
			Password:   cfg.RedisConfig.RedisPassword,
			MaxRetries: cfg.RedisConfig.MaxRetries,
		})
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(client, cfg.RedisConfig, analyzer, logger), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
