package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=mocks/mock_ranker.go -package=mocks . Ranker

// Ranker ranks a delimited resume batch against a job description.
type Ranker interface {
	Rank(jobDescription string, resumesRaw string) (models.AnalysisResult, error)
}

type Handler struct {
	ranker Ranker
	logger *zerolog.Logger
}

func NewHandler(ranker Ranker, logger *zerolog.Logger) *Handler {
	return &Handler{
		ranker: ranker,
		logger: logger,
	}
}

// POST /analyze
// Body: AnalysisRequest
// Returns: AnalysisResult
func (h *Handler) Analyze(req *restful.Request, resp *restful.Response) {
	requestID := uuid.NewString()
	resp.AddHeader("X-Request-ID", requestID)

	var analysisRequest models.AnalysisRequest
	if err := req.ReadEntity(&analysisRequest); err != nil {
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	if err := analysisRequest.Validate(); err != nil {
		h.logger.Warn().Str("request_id", requestID).Msg("Request is missing a required field")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("request_id", requestID).
		Int("job_description_len", len(*analysisRequest.JobDescription)).
		Int("resumes_len", len(*analysisRequest.Resumes)).
		Msg("Start analysis")

	result, err := h.ranker.Rank(*analysisRequest.JobDescription, *analysisRequest.Resumes)
	if err != nil {
		status := statusFor(err)
		event := h.logger.Warn()
		if status == http.StatusInternalServerError {
			event = h.logger.Error()
		}
		event.Err(err).Str("request_id", requestID).Int("status", status).Msg("Analysis failed")
		middleware.HandleError(resp, err, status)
		return
	}

	h.logger.Info().
		Str("request_id", requestID).
		Int("candidates", len(result.RankedCandidates)).
		Msg("Analysis complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// Health handler GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrMissingField), errors.Is(err, models.ErrNoKeywords):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
