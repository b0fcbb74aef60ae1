package scoring

import (
	"math"
	"testing"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/keywords"
)

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name   string
		jd     keywords.Set
		resume keywords.Set
		score  float64
	}{
		{
			name:   "empty job description",
			jd:     keywords.NewSet(),
			resume: keywords.NewSet("python"),
			score:  0.0,
		},
		{
			name:   "empty both",
			jd:     keywords.NewSet(),
			resume: keywords.NewSet(),
			score:  0.0,
		},
		{
			name:   "no overlap",
			jd:     keywords.NewSet("python", "backend"),
			resume: keywords.NewSet("frontend", "designer"),
			score:  0.0,
		},
		{
			name:   "full overlap",
			jd:     keywords.NewSet("python", "backend"),
			resume: keywords.NewSet("python", "backend"),
			score:  100.0,
		},
		{
			name:   "partial overlap",
			jd:     keywords.NewSet("python", "backend", "senior"),
			resume: keywords.NewSet("python", "backend"),
			score:  200.0 / 3.0,
		},
		{
			name:   "extra resume keywords do not penalize",
			jd:     keywords.NewSet("python", "backend"),
			resume: keywords.NewSet("python", "backend", "cooking", "gardening", "chess"),
			score:  100.0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := MatchScore(test.jd, test.resume)
			if math.Abs(got-test.score) > 1e-9 {
				t.Errorf("Score: %f, want: %f", got, test.score)
			}
		})
	}
}

func TestMatchScore_SelfIsFull(t *testing.T) {
	sets := []keywords.Set{
		keywords.NewSet("go"),
		keywords.NewSet("python", "backend", "senior", "developer", "strong"),
		keywords.Extract("Distributed systems engineer with Kafka and Kubernetes"),
	}

	for _, s := range sets {
		if got := MatchScore(s, s); got != 100.0 {
			t.Errorf("MatchScore(S, S) = %f, want 100", got)
		}
	}
}

func TestMatchScore_Monotonic(t *testing.T) {
	jd := keywords.NewSet("python", "backend", "senior", "developer", "strong")
	resume := keywords.NewSet("cooking")

	previous := MatchScore(jd, resume)
	for _, word := range jd.Sorted() {
		resume[word] = struct{}{}
		current := MatchScore(jd, resume)
		if current < previous {
			t.Errorf("score decreased after adding %q: %f -> %f", word, previous, current)
		}
		if current < 0 || current > 100 {
			t.Errorf("score out of range: %f", current)
		}
		previous = current
	}
}

func TestMatched(t *testing.T) {
	jd := keywords.NewSet("python", "backend", "senior")
	resume := keywords.NewSet("backend", "python", "frontend")

	got := Matched(jd, resume)
	if len(got) != 2 || got[0] != "backend" || got[1] != "python" {
		t.Errorf("Matched: %v, want [backend python]", got)
	}
}
