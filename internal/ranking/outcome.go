package ranking

import (
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
)

// Outcome validates and ranks one envelope. Failures become an error outcome
// carrying the client-facing message; the detail is logged here.
func (r *Ranker) Outcome(envelope models.AnalysisEnvelope) models.AnalysisOutcome {
	outcome := models.AnalysisOutcome{RequestID: envelope.RequestID}

	if err := envelope.Validate(); err != nil {
		r.logger.Warn().Str("request_id", envelope.RequestID).Msg("Request is missing a required field")
		return failed(outcome, err)
	}

	result, err := r.Rank(*envelope.JobDescription, *envelope.Resumes)
	if err != nil {
		r.logger.Warn().Err(err).Str("request_id", envelope.RequestID).Msg("Ranking failed")
		return failed(outcome, err)
	}

	outcome.Status = models.OutcomeOK
	outcome.Result = &result
	return outcome
}

func failed(outcome models.AnalysisOutcome, err error) models.AnalysisOutcome {
	outcome.Status = models.OutcomeError
	outcome.Error = models.ClientMessage(err)
	return outcome
}
