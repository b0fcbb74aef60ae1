package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/ranker.yaml"

// Load reads the YAML file named by RANKER_CONFIG_PATH, then applies defaults
// and environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	path := os.Getenv("RANKER_CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a valid configuration without touching the file system or environment.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.API.Port == 0 {
		cfg.API.Port = 8080
	}
	if len(cfg.API.AllowedOrigins) == 0 {
		cfg.API.AllowedOrigins = []string{"*"}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Stream.Provider == "" {
		cfg.Stream.Provider = "redis"
	}
	if cfg.Stream.RedisAddr == "" {
		cfg.Stream.RedisAddr = "localhost:6379"
	}
	if cfg.Stream.RequestStream == "" {
		cfg.Stream.RequestStream = "analysis-requests"
	}
	if cfg.Stream.ResultStream == "" {
		cfg.Stream.ResultStream = "analysis-results"
	}
	if cfg.Stream.Group == "" {
		cfg.Stream.Group = "ranker-group"
	}
	if cfg.Stream.ConsumerName == "" {
		cfg.Stream.ConsumerName = "ranker"
	}
	if cfg.Stream.MaxRetries == 0 {
		cfg.Stream.MaxRetries = 5
	}
	if cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = 5
	}
}

func applyEnv(cfg *Config) {
	cfg.API.Port = getEnvInt("RANKER_API_PORT", cfg.API.Port)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Stream.Provider = getEnv("STREAM_PROVIDER", cfg.Stream.Provider)
	cfg.Stream.RedisAddr = getEnv("REDIS_ADDR", cfg.Stream.RedisAddr)
	cfg.Stream.RedisPassword = getEnv("REDIS_PASSWORD", cfg.Stream.RedisPassword)
	cfg.Stream.ConsumerName = getEnv("HOSTNAME", cfg.Stream.ConsumerName)

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.API.AllowedOrigins = splitList(origins)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
