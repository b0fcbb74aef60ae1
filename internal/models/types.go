package models

// Input message
// Pointer fields tell an absent field apart from an empty one.
type AnalysisRequest struct {
	JobDescription *string `json:"job_description" description:"Job description text"`
	Resumes        *string `json:"resumes" description:"Resume texts joined by ---NEXT---"`
}

// Validate reports ErrMissingField when a required field is absent or null.
func (r AnalysisRequest) Validate() error {
	if r.JobDescription == nil || r.Resumes == nil {
		return ErrMissingField
	}
	return nil
}

// NewAnalysisRequest builds a request with both fields present.
func NewAnalysisRequest(jobDescription, resumes string) AnalysisRequest {
	return AnalysisRequest{
		JobDescription: &jobDescription,
		Resumes:        &resumes,
	}
}

// One scored resume entry
type Candidate struct {
	ID      int     `json:"id"`
	Score   float64 `json:"score"`
	Snippet string  `json:"resume_snippet"`
}

// Final output, ordered by score descending
type AnalysisResult struct {
	RankedCandidates []Candidate `json:"ranked_candidates"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// AnalysisEnvelope carries a request through the stream and batch surfaces.
type AnalysisEnvelope struct {
	RequestID string `json:"request_id"`
	AnalysisRequest
}

type OutcomeStatus string

const (
	OutcomeOK    OutcomeStatus = "ok"
	OutcomeError OutcomeStatus = "error"
)

// AnalysisOutcome is emitted once per envelope, either a result or a client-facing error.
type AnalysisOutcome struct {
	RequestID string          `json:"request_id"`
	Status    OutcomeStatus   `json:"status"`
	Result    *AnalysisResult `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// TopScore returns the best candidate score of a successful outcome.
func (o AnalysisOutcome) TopScore() (float64, bool) {
	if o.Result == nil || len(o.Result.RankedCandidates) == 0 {
		return 0, false
	}
	return o.Result.RankedCandidates[0].Score, true
}
