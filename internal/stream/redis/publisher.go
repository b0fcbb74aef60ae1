package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/redis/go-redis/v9"
)

// Publisher appends envelopes to the request stream.
type Publisher struct {
	client StreamClient
	stream string
}

func NewPublisher(client StreamClient, stream string) *Publisher {
	return &Publisher{
		client: client,
		stream: stream,
	}
}

// Publish returns the stream entry ID assigned by Redis.
func (p *Publisher) Publish(ctx context.Context, envelope models.AnalysisEnvelope) (string, error) {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("encode envelope %s: %w", envelope.RequestID, err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			FieldRequestID: envelope.RequestID,
			FieldPayload:   string(payload),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("publish to %s: %w", p.stream, err)
	}

	return id, nil
}
