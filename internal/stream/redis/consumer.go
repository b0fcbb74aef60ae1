package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Analyzer turns one envelope into one outcome.
type Analyzer interface {
	Outcome(envelope models.AnalysisEnvelope) models.AnalysisOutcome
}

type Consumer struct {
	client        StreamClient
	requestStream string
	resultStream  string
	groupID       string
	consumerName  string
	analyzer      Analyzer
	logger        *zerolog.Logger
	block         time.Duration
	retryDelay    time.Duration

	// set when this consumer may own unacknowledged entries
	retryPending bool
}

func NewConsumer(client StreamClient, cfg *RedisStreamConfig, analyzer Analyzer, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:        client,
		requestStream: cfg.RequestStream,
		resultStream:  cfg.ResultStream,
		groupID:       cfg.Group,
		consumerName:  cfg.ConsumerName,
		analyzer:      analyzer,
		logger:        logger,
		block:         2 * time.Second,
		retryDelay:    time.Second,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.requestStream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create group %s on %s: %w", c.groupID, c.requestStream, err)
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.requestStream).
		Str("results", c.resultStream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	// entries delivered to a previous run but never acknowledged
	c.retryPending = true

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if c.retryPending {
			if err := c.drainPending(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.logger.Error().Err(err).Msg("Failed to read pending entries")
				c.pause(ctx)
				continue
			}
		}

		streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.requestStream, ">"},
			Count:    1,
			Block:    c.block,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			c.pause(ctx)
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

// drainPending re-processes the entries this consumer was handed but never
// acknowledged, walking its pending list from the start until it is empty.
func (c *Consumer) drainPending(ctx context.Context) error {
	c.retryPending = false
	cursor := "0"

	for {
		streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.requestStream, cursor},
			Count:    10,
			Block:    -1,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			c.retryPending = true
			return err
		}

		replayed := 0
		for _, stream := range streams {
			for _, msg := range stream.Messages {
				c.logger.Info().Str("id", msg.ID).Msg("Replaying pending entry")
				c.process(ctx, msg)
				cursor = msg.ID
				replayed++
			}
		}

		if replayed == 0 {
			return nil
		}
	}
}

func (c *Consumer) pause(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(c.retryDelay):
	}
}

func (c *Consumer) Stop() error {
	return c.client.Close()
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	outcome := c.analyze(msg)

	c.logger.Info().
		Str("id", msg.ID).
		Str("request_id", outcome.RequestID).
		Str("status", string(outcome.Status)).
		Msg("Analysis complete")

	if err := c.publish(ctx, outcome); err != nil {
		// stays pending and is replayed by the next drain
		c.retryPending = true
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish outcome")
		return
	}

	c.ack(ctx, msg.ID)
}

func (c *Consumer) analyze(msg redis.XMessage) models.AnalysisOutcome {
	payload, ok := msg.Values[FieldPayload].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		return undecodable(msg.ID)
	}

	var envelope models.AnalysisEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		return undecodable(msg.ID)
	}

	if envelope.RequestID == "" {
		envelope.RequestID = msg.ID
	}

	return c.analyzer.Outcome(envelope)
}

func (c *Consumer) publish(ctx context.Context, outcome models.AnalysisOutcome) error {
	payload, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("encode outcome: %w", err)
	}

	return c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultStream,
		Values: map[string]any{
			FieldRequestID: outcome.RequestID,
			FieldStatus:    string(outcome.Status),
			FieldPayload:   string(payload),
		},
	}).Err()
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.requestStream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}

func undecodable(msgID string) models.AnalysisOutcome {
	return models.AnalysisOutcome{
		RequestID: msgID,
		Status:    models.OutcomeError,
		Error:     models.MessageInternal,
	}
}
