package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ConnectOptions controls the initial connection attempt.
type ConnectOptions struct {
	Addr       string
	Password   string
	MaxRetries int
	// BaseBackoff is doubled after each failed ping. Zero means one second.
	BaseBackoff time.Duration
}

// ConnectRedis pings until the server answers or MaxRetries is reached.
func ConnectRedis(ctx context.Context, opts ConnectOptions) (*redis.Client, error) {
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}
	if opts.BaseBackoff <= 0 {
		opts.BaseBackoff = time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:            opts.Addr,
		Password:        opts.Password,
		DB:              0,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	})

	var err error
	for i := range opts.MaxRetries {
		if i > 0 {
			backoff := opts.BaseBackoff * time.Duration(1<<uint(i))
			log.Info().Dur("backoff", backoff).Msg("Waiting before Redis retry")

			select {
			case <-ctx.Done():
				_ = client.Close()
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		log.Info().Str("addr", opts.Addr).Int("attempt", i+1).Int("max_retries", opts.MaxRetries).Msg("Connecting to Redis")

		err = client.Ping(ctx).Err()
		if err == nil {
			log.Info().Int("attempts_needed", i+1).Msg("Redis connected")
			return client, nil
		}

		log.Warn().Err(err).Int("attempt", i+1).Msg("Redis ping failed")
	}

	_ = client.Close()
	return nil, fmt.Errorf("failed to connect to Redis at %s after %d attempts: %w", opts.Addr, opts.MaxRetries, err)
}
