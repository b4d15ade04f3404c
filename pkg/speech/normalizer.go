package speech

import (
	"regexp"
	"strings"
)

var (
	fillerWordsRegex = regexp.MustCompile(`(?i)\b(?:um|uh|er|ah)\b`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
)

// Normalize strips filler words and collapses whitespace while preserving
// the original casing. It never fails: any panic during cleanup returns the
// raw transcript unchanged.
func Normalize(raw string) (cleaned string) {
	defer func() {
		if r := recover(); r != nil {
			cleaned = raw
		}
	}()

	if raw == "" {
		return ""
	}

	cleaned = fillerWordsRegex.ReplaceAllString(raw, " ")
	cleaned = whitespaceRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
