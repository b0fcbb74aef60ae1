package mcpadapter

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/rs/zerolog"
)

// Ranker ranks a delimited resume batch against a job description.
type Ranker interface {
	Rank(jobDescription string, resumesRaw string) (models.AnalysisResult, error)
}

// RankInput is the MCP tool input schema (matches HTTP API field names).
// Both fields are optional in the schema so a missing one yields the same
// message as the HTTP API instead of a schema violation.
type RankInput struct {
	JobDescription *string `json:"job_description,omitempty" jsonschema:"job description text"`
	Resumes        *string `json:"resumes,omitempty" jsonschema:"resume texts separated by ---NEXT---"`
}

// NewRankHandler returns a tool handler that uses the given ranker.
// Pass the returned function to mcp.AddTool.
func NewRankHandler(ranker Ranker, logger *zerolog.Logger) func(context.Context, *mcp.CallToolRequest, RankInput) (*mcp.CallToolResult, models.AnalysisResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RankInput) (*mcp.CallToolResult, models.AnalysisResult, error) {
		return RankResumes(ctx, ranker, logger, input)
	}
}

// RankResumes ranks the input and reports request errors as tool errors.
func RankResumes(
	ctx context.Context,
	ranker Ranker,
	logger *zerolog.Logger,
	input RankInput,
) (*mcp.CallToolResult, models.AnalysisResult, error) {
	request := models.AnalysisRequest{
		JobDescription: input.JobDescription,
		Resumes:        input.Resumes,
	}

	if err := request.Validate(); err != nil {
		logger.Warn().Msg("rank_resumes called without a required field")
		return nil, models.AnalysisResult{}, errors.New(models.ClientMessage(err))
	}

	result, err := ranker.Rank(*request.JobDescription, *request.Resumes)
	if err != nil {
		logger.Warn().Err(err).Msg("rank_resumes failed")
		return nil, models.AnalysisResult{}, errors.New(models.ClientMessage(err))
	}

	logger.Info().Int("candidates", len(result.RankedCandidates)).Msg("rank_resumes complete")
	return nil, result, nil
}
