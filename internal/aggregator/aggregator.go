// Package aggregator folds analysis outcomes into a run summary.
package aggregator

import (
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/rs/zerolog"
)

type Summary struct {
	Total         int     `json:"total"`
	Succeeded     int     `json:"succeeded"`
	Failed        int     `json:"failed"`
	Candidates    int     `json:"candidates"`
	MeanTopScore  float64 `json:"mean_top_score"`
	BestRequestID string  `json:"best_request_id,omitempty"`
	BestScore     float64 `json:"best_score"`
}

// Aggregator is not safe for concurrent use; feed it from a single goroutine.
type Aggregator struct {
	summary  Summary
	topSum   float64
	topCount int
	logger   *zerolog.Logger
}

func NewAggregator(logger *zerolog.Logger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

func (a *Aggregator) Add(outcome models.AnalysisOutcome) {
	a.summary.Total++

	if outcome.Status != models.OutcomeOK {
		a.summary.Failed++
		return
	}

	a.summary.Succeeded++
	if outcome.Result != nil {
		a.summary.Candidates += len(outcome.Result.RankedCandidates)
	}

	top, ok := outcome.TopScore()
	if !ok {
		return
	}

	a.topSum += top
	a.topCount++

	// first request wins ties
	if a.summary.BestRequestID == "" || top > a.summary.BestScore {
		a.summary.BestRequestID = outcome.RequestID
		a.summary.BestScore = top
	}
}

func (a *Aggregator) Summary() Summary {
	summary := a.summary
	if a.topCount > 0 {
		summary.MeanTopScore = a.topSum / float64(a.topCount)
	}

	a.logger.
		Info().
		Int("total", summary.Total).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Float64("mean_top_score", summary.MeanTopScore).
		Msg("aggregation complete")
	return summary
}

// Aggregate summarises a complete set of outcomes.
func (a *Aggregator) Aggregate(outcomes []models.AnalysisOutcome) Summary {
	for _, outcome := range outcomes {
		a.Add(outcome)
	}
	return a.Summary()
}
