// Package ranking scores a batch of resumes against one job description and
// orders them by match score.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/keywords"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/scoring"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/snippet"
	"github.com/rs/zerolog"
)

// Delimiter separates resumes inside a single resumes string.
const Delimiter = "---NEXT---"

// ErrNoKeywords is returned when the job description has no qualifying keywords.
var ErrNoKeywords = models.ErrNoKeywords

// Ranker holds no per-request state and is safe for concurrent use.
type Ranker struct {
	logger *zerolog.Logger
}

func NewRanker(logger *zerolog.Logger) *Ranker {
	return &Ranker{
		logger: logger,
	}
}

// Split cuts the raw resumes string on Delimiter. Positions in the returned
// slice define candidate IDs, blank entries included.
func Split(resumesRaw string) []string {
	return strings.Split(resumesRaw, Delimiter)
}

// Rank splits resumesRaw and ranks every non-blank entry.
func (r *Ranker) Rank(jobDescription string, resumesRaw string) (models.AnalysisResult, error) {
	return r.RankEntries(jobDescription, Split(resumesRaw))
}

// RankEntries scores each entry against the job description. Entry i becomes
// candidate i+1; entries that are blank after trimming are skipped and their
// IDs are not reused. Candidates with equal scores keep their entry order.
func (r *Ranker) RankEntries(jobDescription string, entries []string) (models.AnalysisResult, error) {
	result := models.AnalysisResult{
		RankedCandidates: []models.Candidate{},
	}

	jdKeywords := keywords.Extract(jobDescription)
	if jdKeywords.Len() == 0 {
		return result, fmt.Errorf("rank %d resumes: %w", len(entries), ErrNoKeywords)
	}

	for i, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			r.logger.Debug().Int("position", i+1).Msg("Skipping blank resume")
			continue
		}

		resumeKeywords := keywords.Extract(entry)
		candidate := models.Candidate{
			ID:      i + 1,
			Score:   scoring.MatchScore(jdKeywords, resumeKeywords),
			Snippet: snippet.FromResume(entry),
		}

		r.logger.Debug().
			Int("id", candidate.ID).
			Float64("score", candidate.Score).
			Strs("matched", scoring.Matched(jdKeywords, resumeKeywords)).
			Msg("Resume scored")

		result.RankedCandidates = append(result.RankedCandidates, candidate)
	}

	sort.SliceStable(result.RankedCandidates, func(i, j int) bool {
		return result.RankedCandidates[i].Score > result.RankedCandidates[j].Score
	})

	r.logger.Info().
		Int("jd_keywords", jdKeywords.Len()).
		Int("entries", len(entries)).
		Int("candidates", len(result.RankedCandidates)).
		Msg("Ranking complete")

	return result, nil
}
