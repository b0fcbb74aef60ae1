package snippet

import (
	"strings"
	"unicode/utf8"
)

// MaxRunes is the longest snippet returned.
const MaxRunes = 80

// FromResume trims surrounding whitespace and keeps the first MaxRunes characters.
// The cut is positional and may fall in the middle of a word.
func FromResume(text string) string {
	if text == "" {
		return ""
	}

	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) <= MaxRunes {
		return trimmed
	}

	runes := []rune(trimmed)
	return string(runes[:MaxRunes])
}
