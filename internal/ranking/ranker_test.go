package ranking

import (
	"errors"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/keywords"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/scoring"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestRank_EndToEndExample(t *testing.T) {
	ranker := NewRanker(newTestLogger())

	jd := "Senior Python Developer required with strong backend skills"
	resume1 := "I am a backend developer with Python experience."
	resume3 := "Frontend designer, no backend knowledge."
	raw := resume1 + "---NEXT---   ---NEXT---" + resume3

	result, err := ranker.Rank(jd, raw)
	require.NoError(t, err)
	require.Len(t, result.RankedCandidates, 2)

	jdKeywords := keywords.Extract(jd)
	want1 := scoring.MatchScore(jdKeywords, keywords.Extract(resume1))
	want3 := scoring.MatchScore(jdKeywords, keywords.Extract(resume3))

	first, second := result.RankedCandidates[0], result.RankedCandidates[1]
	assert.Equal(t, 1, first.ID)
	assert.InDelta(t, want1, first.Score, 1e-9)
	assert.Equal(t, resume1, first.Snippet)

	assert.Equal(t, 3, second.ID)
	assert.InDelta(t, want3, second.Score, 1e-9)
	assert.Less(t, second.Score, first.Score)

	// jd keywords: backend, developer, python, senior, strong
	assert.InDelta(t, 60.0, first.Score, 1e-9)
	assert.InDelta(t, 20.0, second.Score, 1e-9)
}

func TestRank_NoKeywords(t *testing.T) {
	ranker := NewRanker(newTestLogger())

	for _, jd := range []string{"", "a an the", "   ", "to be or not to be", "Experience required"} {
		t.Run(jd, func(t *testing.T) {
			result, err := ranker.Rank(jd, "Python developer")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNoKeywords))
			assert.True(t, errors.Is(err, models.ErrNoKeywords))
			assert.Empty(t, result.RankedCandidates)
		})
	}
}

func TestRank_BlankEntriesKeepPositions(t *testing.T) {
	ranker := NewRanker(newTestLogger())

	raw := strings.Join([]string{
		"",
		"golang engineer",
		" \n\t ",
		"golang kubernetes engineer",
		"",
	}, Delimiter)

	result, err := ranker.Rank("golang kubernetes engineer", raw)
	require.NoError(t, err)

	ids := make([]int, 0, len(result.RankedCandidates))
	for _, c := range result.RankedCandidates {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int{4, 2}, ids)
}

func TestRank_StableOrderOnTies(t *testing.T) {
	ranker := NewRanker(newTestLogger())

	raw := strings.Join([]string{
		"python backend",
		"nothing relevant here",
		"backend python",
		"python",
		"python backend again",
	}, Delimiter)

	result, err := ranker.Rank("python backend", raw)
	require.NoError(t, err)

	ids := make([]int, 0, len(result.RankedCandidates))
	for _, c := range result.RankedCandidates {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int{1, 3, 5, 4, 2}, ids)
}

func TestRank_SortedDescending(t *testing.T) {
	ranker := NewRanker(newTestLogger())

	raw := strings.Join([]string{
		"rust",
		"rust golang python",
		"golang",
		"rust golang",
	}, Delimiter)

	result, err := ranker.Rank("rust golang python", raw)
	require.NoError(t, err)
	require.Len(t, result.RankedCandidates, 4)

	for i := 1; i < len(result.RankedCandidates); i++ {
		assert.GreaterOrEqual(t, result.RankedCandidates[i-1].Score, result.RankedCandidates[i].Score)
	}
	assert.Equal(t, 2, result.RankedCandidates[0].ID)
	assert.InDelta(t, 100.0, result.RankedCandidates[0].Score, 1e-9)
}

func TestRank_EmptyResumes(t *testing.T) {
	ranker := NewRanker(newTestLogger())

	result, err := ranker.Rank("python developer", "")
	require.NoError(t, err)
	assert.NotNil(t, result.RankedCandidates)
	assert.Empty(t, result.RankedCandidates)
}

func TestRank_SnippetIsTrimmedAndTruncated(t *testing.T) {
	ranker := NewRanker(newTestLogger())

	body := strings.Repeat("python ", 30)
	result, err := ranker.Rank("python", "\n\n   "+body)
	require.NoError(t, err)
	require.Len(t, result.RankedCandidates, 1)

	assert.Equal(t, body[:80], result.RankedCandidates[0].Snippet)
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{""}, Split(""))
	assert.Equal(t, []string{"a", "b"}, Split("a---NEXT---b"))
	assert.Equal(t, []string{"", "", ""}, Split("---NEXT------NEXT---"))
	assert.Equal(t, []string{"a --NEXT-- b"}, Split("a --NEXT-- b"))
}

func TestRankEntries_ConcurrentUse(t *testing.T) {
	ranker := NewRanker(newTestLogger())
	entries := []string{"golang developer", "python developer", ""}

	done := make(chan models.AnalysisResult, 8)
	for range 8 {
		go func() {
			result, err := ranker.RankEntries("golang developer", entries)
			if err != nil {
				t.Error(err)
			}
			done <- result
		}()
	}

	for range 8 {
		result := <-done
		require.Len(t, result.RankedCandidates, 2)
		assert.Equal(t, 1, result.RankedCandidates[0].ID)
		assert.InDelta(t, 100.0, result.RankedCandidates[0].Score, 1e-9)
	}
}
