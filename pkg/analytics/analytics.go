// Package analytics computes word frequencies over the training corpus.
// The stats feed the corpus inspection command, which is how you find
// out what the captured material is actually about.
package analytics

import (
	"sort"
	"strings"

	"trainingcopilot/models"
)

// stopwords are skipped in frequency analysis: grammatical filler plus
// the navigation noise every captured page carries.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "before": {}, "between": {}, "both": {},
	"but": {}, "by": {}, "can": {}, "could": {}, "did": {}, "do": {},
	"does": {}, "down": {}, "during": {}, "each": {}, "for": {},
	"from": {}, "had": {}, "has": {}, "have": {}, "he": {}, "her": {},
	"here": {}, "his": {}, "how": {}, "if": {}, "in": {}, "into": {},
	"is": {}, "it": {}, "its": {}, "just": {}, "may": {}, "more": {},
	"most": {}, "must": {}, "no": {}, "not": {}, "of": {}, "off": {},
	"on": {}, "one": {}, "only": {}, "or": {}, "other": {}, "our": {},
	"out": {}, "over": {}, "she": {}, "should": {}, "so": {}, "some": {},
	"such": {}, "than": {}, "that": {}, "the": {}, "their": {},
	"them": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "to": {}, "under": {},
	"up": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "while": {}, "who": {}, "why": {},
	"will": {}, "with": {}, "would": {}, "you": {}, "your": {},

	// Common web/UI noise words
	"click": {}, "button": {}, "link": {}, "menu": {}, "page": {},
	"pages": {}, "site": {}, "home": {}, "search": {}, "loading": {},
	"next": {}, "previous": {}, "submit": {},
}

// WordFrequency counts the non-stopword words across the whole corpus.
func WordFrequency(pages []models.TrainingPage) map[string]int {
	frequencies := make(map[string]int)
	for _, page := range pages {
		for _, word := range strings.Fields(strings.ToLower(page.Content)) {
			// Strip everything but letters and digits off the edges
			word = strings.TrimFunc(word, func(r rune) bool {
				return ('a' > r || r > 'z') && ('0' > r || r > '9')
			})
			if _, skip := stopwords[word]; skip || word == "" {
				continue
			}
			frequencies[word]++
		}
	}
	return frequencies
}

// Keyword is one entry of a top-N ranking.
type Keyword struct {
	Word  string
	Count int
}

// TopKeywords ranks the frequency map and returns the first n entries.
// Ties break alphabetically so the ranking is stable across runs.
func TopKeywords(frequencies map[string]int, n int) []Keyword {
	ranked := make([]Keyword, 0, len(frequencies))
	for word, count := range frequencies {
		ranked = append(ranked, Keyword{Word: word, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	return ranked[:n]
}
