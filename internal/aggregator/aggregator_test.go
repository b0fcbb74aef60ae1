package aggregator

import (
	"math"
	"testing"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func okOutcome(id string, scores ...float64) models.AnalysisOutcome {
	candidates := []models.Candidate{}
	for i, score := range scores {
		candidates = append(candidates, models.Candidate{ID: i + 1, Score: score})
	}
	return models.AnalysisOutcome{
		RequestID: id,
		Status:    models.OutcomeOK,
		Result:    &models.AnalysisResult{RankedCandidates: candidates},
	}
}

func errOutcome(id string) models.AnalysisOutcome {
	return models.AnalysisOutcome{RequestID: id, Status: models.OutcomeError, Error: models.MessageNoKeywords}
}

func TestAggregate_Mixed(t *testing.T) {
	agg := NewAggregator(newTestLogger())

	summary := agg.Aggregate([]models.AnalysisOutcome{
		okOutcome("a", 60, 20),
		errOutcome("b"),
		okOutcome("c", 80),
		okOutcome("d"),
	})

	if summary.Total != 4 {
		t.Errorf("expected total 4, got %d", summary.Total)
	}
	if summary.Succeeded != 3 || summary.Failed != 1 {
		t.Errorf("expected 3 succeeded / 1 failed, got %d / %d", summary.Succeeded, summary.Failed)
	}
	if summary.Candidates != 3 {
		t.Errorf("expected 3 candidates, got %d", summary.Candidates)
	}
	// (60 + 80) / 2; "d" has no candidates and no top score
	if math.Abs(summary.MeanTopScore-70) > 1e-9 {
		t.Errorf("expected mean top score 70, got %f", summary.MeanTopScore)
	}
	if summary.BestRequestID != "c" || summary.BestScore != 80 {
		t.Errorf("expected best c/80, got %s/%f", summary.BestRequestID, summary.BestScore)
	}
}

func TestAggregate_TieKeepsFirst(t *testing.T) {
	agg := NewAggregator(newTestLogger())

	summary := agg.Aggregate([]models.AnalysisOutcome{
		okOutcome("first", 50),
		okOutcome("second", 50),
	})

	if summary.BestRequestID != "first" {
		t.Errorf("expected first request to win tie, got %s", summary.BestRequestID)
	}
}

func TestAggregate_ZeroScoreIsStillBest(t *testing.T) {
	agg := NewAggregator(newTestLogger())

	summary := agg.Aggregate([]models.AnalysisOutcome{okOutcome("only", 0)})

	if summary.BestRequestID != "only" || summary.BestScore != 0 {
		t.Errorf("expected best only/0, got %s/%f", summary.BestRequestID, summary.BestScore)
	}
}

func TestAggregate_Empty(t *testing.T) {
	agg := NewAggregator(newTestLogger())

	summary := agg.Aggregate(nil)

	if summary.Total != 0 || summary.MeanTopScore != 0 || summary.BestRequestID != "" {
		t.Errorf("expected empty summary, got %+v", summary)
	}
}

func TestAggregate_AllFailed(t *testing.T) {
	agg := NewAggregator(newTestLogger())

	summary := agg.Aggregate([]models.AnalysisOutcome{errOutcome("x"), errOutcome("y")})

	if summary.Failed != 2 || summary.Succeeded != 0 {
		t.Errorf("expected 2 failed, got %+v", summary)
	}
	if summary.MeanTopScore != 0 {
		t.Errorf("expected mean 0, got %f", summary.MeanTopScore)
	}
}
