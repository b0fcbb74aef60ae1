package main

import (
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
)

func TestBuildEnvelope(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		jd        string
		resumes   string
		requestID string
		expectErr error
		expectID  string
	}{
		{
			name:      "inline json",
			data:      `{"job_description": "golang", "resumes": "golang"}`,
			requestID: "fixed",
			expectID:  "fixed",
		},
		{
			name:    "flags",
			jd:      "golang",
			resumes: "golang---NEXT---rust",
		},
		{
			name:      "inline json missing field",
			data:      `{"job_description": "golang"}`,
			expectErr: models.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := buildEnvelope(tt.data, tt.jd, tt.resumes, tt.requestID)

			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected %v, got %v", tt.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expectID != "" && envelope.RequestID != tt.expectID {
				t.Errorf("expected request id %s, got %s", tt.expectID, envelope.RequestID)
			}
			if envelope.RequestID == "" {
				t.Error("expected a generated request id")
			}
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		if _, err := buildEnvelope("{", "", "", ""); err == nil {
			t.Error("expected decode error")
		}
	})
}
