// Package stream runs the ranker behind a message stream: requests are read
// from one stream and one outcome per request is appended to another.
package stream

import "context"

type StreamConsumer interface {
	// Setup creates the consumer group if it does not exist yet.
	Setup(ctx context.Context) error
	// Start blocks, processing messages until ctx is cancelled.
	Start(ctx context.Context) error
	Stop() error
}
