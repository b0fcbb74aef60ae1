package config

import (
	"errors"
	"fmt"
)

// Config represents the complete ranker configuration
type Config struct {
	API    APIConfig    `yaml:"api"`
	Log    LogConfig    `yaml:"log"`
	Stream StreamConfig `yaml:"stream"`
	Batch  BatchConfig  `yaml:"batch"`
}

// APIConfig contains the HTTP listener and CORS settings
type APIConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// StreamConfig describes where stream requests are read from and outcomes written to
type StreamConfig struct {
	Provider      string `yaml:"provider"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RequestStream string `yaml:"request_stream"`
	ResultStream  string `yaml:"result_stream"`
	Group         string `yaml:"group"`
	ConsumerName  string `yaml:"consumer_name"`
	MaxRetries    int    `yaml:"max_retries"`
}

type BatchConfig struct {
	Workers int `yaml:"workers"`
}

func (c *Config) Validate() error {
	var errs []error

	if c.API.Port < 1 || c.API.Port > 65535 {
		errs = append(errs, fmt.Errorf("api.port %d out of range", c.API.Port))
	}
	if len(c.API.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("api.allowed_origins must not be empty"))
	}
	if c.Stream.RequestStream == "" {
		errs = append(errs, errors.New("stream.request_stream must not be empty"))
	}
	if c.Stream.ResultStream == "" {
		errs = append(errs, errors.New("stream.result_stream must not be empty"))
	}
	if c.Stream.RequestStream != "" && c.Stream.RequestStream == c.Stream.ResultStream {
		errs = append(errs, errors.New("stream.request_stream and stream.result_stream must differ"))
	}
	if c.Stream.Group == "" {
		errs = append(errs, errors.New("stream.group must not be empty"))
	}
	if c.Stream.MaxRetries < 1 {
		errs = append(errs, fmt.Errorf("stream.max_retries must be positive, got %d", c.Stream.MaxRetries))
	}
	if c.Batch.Workers < 1 {
		errs = append(errs, fmt.Errorf("batch.workers must be positive, got %d", c.Batch.Workers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
