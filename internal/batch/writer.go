package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/aggregator"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

type Writer interface {
	Write(outcome models.AnalysisOutcome) error
	Close() error
}

func NewWriter(w io.Writer, format string, logger *zerolog.Logger) (Writer, error) {
	switch format {
	case FormatJSONL:
		return &jsonlWriter{encoder: json.NewEncoder(w)}, nil
	case FormatSummary:
		return &summaryWriter{
			w:   w,
			agg: aggregator.NewAggregator(logger),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
}

// jsonlWriter writes one outcome per line.
type jsonlWriter struct {
	encoder *json.Encoder
}

func (j *jsonlWriter) Write(outcome models.AnalysisOutcome) error {
	return j.encoder.Encode(outcome)
}

func (j *jsonlWriter) Close() error {
	return nil
}

// summaryWriter only writes the aggregated summary on Close.
type summaryWriter struct {
	w      io.Writer
	agg    *aggregator.Aggregator
	closed bool
}

func (s *summaryWriter) Write(outcome models.AnalysisOutcome) error {
	s.agg.Add(outcome)
	return nil
}

func (s *summaryWriter) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	encoder := json.NewEncoder(s.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s.agg.Summary())
}
