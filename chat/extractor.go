package chat

import (
	"regexp"
	"strings"
	"sync"
)

// termPatterns caches the compiled word-boundary pattern per vocabulary term.
// The vocabulary is small and stable between catalog reloads, so the cache
// converges after the first few requests.
var termPatterns sync.Map // string -> *regexp.Regexp

func patternFor(term string) *regexp.Regexp {
	if cached, ok := termPatterns.Load(term); ok {
		return cached.(*regexp.Regexp)
	}

	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	termPatterns.Store(term, re)
	return re
}

// ExtractSymptoms maps free-text input to the vocabulary terms it mentions.
// A term matches only as a whole word, case-insensitively; multi-word terms
// must appear as a contiguous phrase with boundaries at both ends. This is
// stricter than the knowledge base's substring matching on purpose: the two
// stages trade recall and precision differently and must not be unified.
//
// The result is a subset of the vocabulary, lowercased and deduplicated.
func ExtractSymptoms(message string, vocabulary []string) []string {
	if strings.TrimSpace(message) == "" {
		return []string{}
	}

	seen := make(map[string]bool, len(vocabulary))
	matched := make([]string, 0, 4)

	for _, term := range vocabulary {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}

		if patternFor(term).MatchString(message) {
			seen[term] = true
			matched = append(matched, term)
		}
	}

	return matched
}
