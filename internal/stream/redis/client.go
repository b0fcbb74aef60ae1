package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/mock_stream_client.go -package=mocks . StreamClient

// StreamClient is the subset of *redis.Client used for stream traffic.
type StreamClient interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Close() error
}

var _ StreamClient = (*redis.Client)(nil)

// Message field names shared by the producer, the consumer and result readers.
const (
	FieldPayload   = "payload"
	FieldRequestID = "request_id"
	FieldStatus    = "status"
)
