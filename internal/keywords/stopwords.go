package keywords

// stopWords holds English function words plus resume/job-posting noise words.
// It is never written after package init.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your",
		"he", "him", "his", "she", "her", "it", "its", "they", "them", "their",
		"what", "which", "who", "whom", "this", "that", "these", "those", "am", "is", "are",
		"was", "were", "be", "been", "being", "have", "has", "had", "having", "do",
		"does", "did", "doing", "a", "an", "the", "and", "but", "if", "or", "because",
		"as", "until", "while", "of", "at", "by", "for", "with", "about", "against",
		"between", "into", "through", "during", "before", "after", "above", "below",
		"to", "from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
		"further", "then", "once", "here", "there", "when", "where", "why", "how",
		"all", "any", "both", "each", "few", "more", "most", "other", "some", "such",
		"no", "nor", "not", "only", "own", "same", "so", "than", "too", "very",
		"s", "t", "can", "will", "just", "don", "should", "now", "d", "ll", "m", "o", "re",
		"ve", "y", "ain", "aren", "couldn", "didn", "doesn", "hadn", "hasn", "haven",
		"isn", "ma", "mightn", "mustn", "needn", "shan", "shouldn", "wasn", "weren",
		"won", "wouldn",
		// noise words common to every job posting
		"experience", "required", "skills", "responsibilities",
		"qualifications", "duties", "role",
	} {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether w (already lowercased) is excluded from keyword sets.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}
