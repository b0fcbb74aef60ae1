package ranking

import (
	"testing"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRanker_Outcome(t *testing.T) {
	ranker := NewRanker(newTestLogger())

	t.Run("success carries result", func(t *testing.T) {
		envelope := models.AnalysisEnvelope{
			RequestID:       "req-1",
			AnalysisRequest: models.NewAnalysisRequest("golang engineer", "golang engineer"+Delimiter+"baker"),
		}

		outcome := ranker.Outcome(envelope)

		assert.Equal(t, "req-1", outcome.RequestID)
		assert.Equal(t, models.OutcomeOK, outcome.Status)
		assert.Empty(t, outcome.Error)
		require.NotNil(t, outcome.Result)
		require.Len(t, outcome.Result.RankedCandidates, 2)

		top, ok := outcome.TopScore()
		assert.True(t, ok)
		assert.Equal(t, 100.0, top)
	})

	t.Run("missing field", func(t *testing.T) {
		jd := "golang engineer"
		envelope := models.AnalysisEnvelope{
			RequestID:       "req-2",
			AnalysisRequest: models.AnalysisRequest{JobDescription: &jd},
		}

		outcome := ranker.Outcome(envelope)

		assert.Equal(t, models.OutcomeError, outcome.Status)
		assert.Equal(t, models.MessageMissingField, outcome.Error)
		assert.Nil(t, outcome.Result)
	})

	t.Run("no keywords", func(t *testing.T) {
		envelope := models.AnalysisEnvelope{
			RequestID:       "req-3",
			AnalysisRequest: models.NewAnalysisRequest("the and with", "anything"),
		}

		outcome := ranker.Outcome(envelope)

		assert.Equal(t, models.OutcomeError, outcome.Status)
		assert.Equal(t, models.MessageNoKeywords, outcome.Error)

		_, ok := outcome.TopScore()
		assert.False(t, ok)
	})
}
