package setup

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/config"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/ranking"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Ranker *ranking.Ranker
	Config *config.Config
	Logger *zerolog.Logger
}

// LoadConfig loads the ranker configuration from file and environment.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Wire builds the components shared by every binary.
func Wire(cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	if cfg == nil {
		return nil, fmt.Errorf("wire dependencies: nil config")
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	ranker := ranking.NewRanker(logger)

	return &Dependencies{
		Ranker: ranker,
		Config: cfg,
		Logger: logger,
	}, nil
}
