package mcpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/ranking"
	"github.com/rs/zerolog"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func strPtr(s string) *string {
	return &s
}

type failingRanker struct{ err error }

func (f failingRanker) Rank(string, string) (models.AnalysisResult, error) {
	return models.AnalysisResult{}, f.err
}

func TestRankResumes(t *testing.T) {
	tests := []struct {
		name        string
		ranker      Ranker
		input       RankInput
		expectedErr string
		expectedIDs []int
	}{
		{
			name:   "ranks resumes",
			ranker: ranking.NewRanker(testLogger()),
			input: RankInput{
				JobDescription: strPtr("golang kubernetes engineer"),
				Resumes:        strPtr("golang baker---NEXT---golang kubernetes engineer"),
			},
			expectedIDs: []int{2, 1},
		},
		{
			name:        "missing resumes",
			ranker:      ranking.NewRanker(testLogger()),
			input:       RankInput{JobDescription: strPtr("golang engineer")},
			expectedErr: models.MessageMissingField,
		},
		{
			name:   "no keywords",
			ranker: ranking.NewRanker(testLogger()),
			input: RankInput{
				JobDescription: strPtr("the and with"),
				Resumes:        strPtr("anything"),
			},
			expectedErr: models.MessageNoKeywords,
		},
		{
			name:   "internal failure is masked",
			ranker: failingRanker{err: errors.New("boom")},
			input: RankInput{
				JobDescription: strPtr("golang"),
				Resumes:        strPtr("golang"),
			},
			expectedErr: models.MessageInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, result, err := RankResumes(context.Background(), tt.ranker, testLogger(), tt.input)

			if tt.expectedErr != "" {
				if err == nil {
					t.Fatalf("Expected error %q, got nil", tt.expectedErr)
				}
				if err.Error() != tt.expectedErr {
					t.Errorf("Expected error %q, got %q", tt.expectedErr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(result.RankedCandidates) != len(tt.expectedIDs) {
				t.Fatalf("Expected %d candidates, got %d", len(tt.expectedIDs), len(result.RankedCandidates))
			}
			for i, id := range tt.expectedIDs {
				if result.RankedCandidates[i].ID != id {
					t.Errorf("Position %d: expected id %d, got %d", i, id, result.RankedCandidates[i].ID)
				}
			}
		})
	}
}

func TestServer_CallTool(t *testing.T) {
	ctx := context.Background()

	server := NewServer(ranking.NewRanker(testLogger()), testLogger())
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("Failed to connect server: %v", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("Failed to connect client: %v", err)
	}
	defer session.Close()

	t.Run("success", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: ToolRankResumes,
			Arguments: map[string]any{
				"job_description": "golang kubernetes engineer",
				"resumes":         "golang---NEXT---golang kubernetes engineer",
			},
		})
		if err != nil {
			t.Fatalf("CallTool failed: %v", err)
		}
		if res.IsError {
			t.Fatalf("Expected success, got tool error: %+v", res.Content)
		}

		data, err := json.Marshal(res.StructuredContent)
		if err != nil {
			t.Fatalf("Failed to encode structured content: %v", err)
		}
		var result models.AnalysisResult
		if err := json.Unmarshal(data, &result); err != nil {
			t.Fatalf("Failed to decode structured content: %v", err)
		}
		if len(result.RankedCandidates) != 2 || result.RankedCandidates[0].ID != 2 {
			t.Errorf("Unexpected result: %+v", result)
		}
	})

	t.Run("missing field is a tool error", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      ToolRankResumes,
			Arguments: map[string]any{"job_description": "golang"},
		})
		if err != nil {
			t.Fatalf("CallTool failed: %v", err)
		}
		if !res.IsError {
			t.Fatal("Expected tool error")
		}
		if len(res.Content) == 0 {
			t.Fatal("Expected error content")
		}
		text, ok := res.Content[0].(*mcp.TextContent)
		if !ok || text.Text != models.MessageMissingField {
			t.Errorf("Expected %q, got %+v", models.MessageMissingField, res.Content[0])
		}
	})
}
