package scoring

import (
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/keywords"
)

// MatchScore returns the percentage of job description keywords that also appear
// in the resume. It measures job coverage only: extra resume keywords never lower
// the score. An empty job keyword set scores 0.
func MatchScore(jd keywords.Set, resume keywords.Set) float64 {
	if jd.Len() == 0 {
		return 0.0
	}

	count := 0
	for token := range jd {
		if resume.Has(token) {
			count++
		}
	}

	return float64(count) / float64(jd.Len()) * 100
}

// Matched lists the job keywords found in the resume, sorted.
func Matched(jd keywords.Set, resume keywords.Set) []string {
	return jd.Intersect(resume).Sorted()
}
