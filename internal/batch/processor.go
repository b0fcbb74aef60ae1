package batch

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Analyzer turns one envelope into one outcome.
type Analyzer interface {
	Outcome(envelope models.AnalysisEnvelope) models.AnalysisOutcome
}

type Processor struct {
	analyzer Analyzer
	workers  int
	logger   *zerolog.Logger
}

func NewProcessor(analyzer Analyzer, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		analyzer: analyzer,
		workers:  workers,
		logger:   logger,
	}
}

// Process emits one outcome per record in completion order. Records that
// failed to parse become error outcomes. The channel closes once every
// record is handled or ctx is done.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.AnalysisOutcome {
	out := make(chan models.AnalysisOutcome, p.workers)

	go func() {
		defer close(out)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)

		for _, record := range records {
			if gctx.Err() != nil {
				break
			}

			g.Go(func() error {
				outcome := p.processRecord(record)

				select {
				case out <- outcome:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}

		if err := g.Wait(); err != nil {
			p.logger.Warn().Err(err).Msg("Batch processing stopped early")
		}
	}()

	return out
}

func (p *Processor) processRecord(record InputRecord) models.AnalysisOutcome {
	if record.Error != nil {
		p.logger.Error().Err(record.Error).Int("line", record.LineNumber).Msg("Skipping unparseable record")
		return models.AnalysisOutcome{
			RequestID: fmt.Sprintf("line-%d", record.LineNumber),
			Status:    models.OutcomeError,
			Error:     models.MessageInternal,
		}
	}

	outcome := p.analyzer.Outcome(record.Envelope)

	p.logger.Debug().
		Int("line", record.LineNumber).
		Str("request_id", outcome.RequestID).
		Str("status", string(outcome.Status)).
		Msg("Record processed")

	return outcome
}
