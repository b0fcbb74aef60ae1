// Package keywords turns free text into a set of normalized keyword tokens.
package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// MinRunes is the shortest token length kept; shorter tokens are dropped.
const MinRunes = 3

// wordPattern matches maximal runs of word characters: letters, numbers and underscore.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Set is an unordered collection of unique keywords.
type Set map[string]struct{}

// NewSet builds a Set holding words; duplicates collapse.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether word is in the set.
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of distinct keywords.
func (s Set) Len() int {
	return len(s)
}

// Intersect returns the keywords present in both s and other.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	out := make(Set)
	for w := range small {
		if large.Has(w) {
			out[w] = struct{}{}
		}
	}
	return out
}

// Sorted returns the keywords in lexical order.
func (s Set) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Extract lowercases text, splits it into word tokens and keeps the ones that
// are at least MinRunes long and not stop words.
func Extract(text string) Set {
	set := make(Set)
	if text == "" {
		return set
	}

	for _, token := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if utf8.RuneCountInString(token) < MinRunes || IsStopWord(token) {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}
