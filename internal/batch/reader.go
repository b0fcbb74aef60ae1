// Package batch ranks a JSONL file of analysis envelopes with a bounded
// worker pool.
package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/rs/zerolog"
)

// maxLineBytes bounds a single JSONL record; resume batches can be large.
const maxLineBytes = 16 * 1024 * 1024

// InputRecord is one non-blank input line, decoded or not.
type InputRecord struct {
	LineNumber int
	Envelope   models.AnalysisEnvelope
	Error      error
}

type Reader struct {
	input  io.Reader
	logger *zerolog.Logger
}

func NewReader(input io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		input:  input,
		logger: logger,
	}
}

// ReadAll streams records until EOF or ctx is done. Blank lines are skipped
// but still counted for line numbers. Envelopes without a request_id get one.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.input)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			record := r.parse(lineNumber, line)

			select {
			case out <- record:
			case <-ctx.Done():
				r.logger.Warn().Int("line", lineNumber).Msg("Reading cancelled")
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Int("line", lineNumber+1).Msg("Failed to scan input")
			select {
			case out <- InputRecord{LineNumber: lineNumber + 1, Error: fmt.Errorf("scan line %d: %w", lineNumber+1, err)}:
			case <-ctx.Done():
			}
		}
	}()

	return out
}

func (r *Reader) parse(lineNumber int, line string) InputRecord {
	record := InputRecord{LineNumber: lineNumber}

	if err := json.Unmarshal([]byte(line), &record.Envelope); err != nil {
		record.Error = fmt.Errorf("line %d: invalid JSON: %w", lineNumber, err)
		r.logger.Debug().Err(err).Int("line", lineNumber).Msg("Failed to parse record")
		return record
	}

	if record.Envelope.RequestID == "" {
		record.Envelope.RequestID = uuid.NewString()
	}

	return record
}
