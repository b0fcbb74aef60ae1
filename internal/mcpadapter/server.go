package mcpadapter

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

const ToolRankResumes = "rank_resumes"

// NewServer builds an MCP server exposing the ranking tool.
func NewServer(ranker Ranker, logger *zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "resume-ranker",
			Version: "1.0.0",
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolRankResumes,
		Description: "Rank resumes (separated by ---NEXT---) by keyword overlap with a job description. Scores are 0-100.",
	}, NewRankHandler(ranker, logger))

	return server
}
