package normalize

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Scorer computes a similarity score between two strings in [0,100].
// Any edit-distance-based implementation is acceptable; the brand threshold
// semantics are defined against this scale.
type Scorer interface {
	Score(a, b string) int
}

// WRatioScorer scores with fuzzywuzzy's weighted ratio. It combines full,
// partial, and token-sorted ratios, so word order and extra tokens cost
// little.
type WRatioScorer struct{}

// Score returns the weighted ratio between a and b.
func (WRatioScorer) Score(a, b string) int {
	return fuzzy.WRatio(a, b)
}

// RatioScorer scores with the plain Levenshtein-based ratio. Stricter than
// WRatioScorer; useful when brand strings are already close to clean.
type RatioScorer struct{}

// Score returns the simple ratio between a and b.
func (RatioScorer) Score(a, b string) int {
	return fuzzy.Ratio(a, b)
}

// BestMatch scans candidates in order and returns the best-scoring one along
// with its score. Scan order breaks ties: the first candidate with the top
// score wins, which is deterministic for a fixed candidate list. Returns
// ok=false for an empty candidate list or empty query.
func BestMatch(scorer Scorer, query string, candidates []string) (match string, score int, ok bool) {
	if query == "" || len(candidates) == 0 {
		return "", 0, false
	}

	best := -1
	for _, candidate := range candidates {
		s := scorer.Score(query, candidate)
		if s > best {
			best = s
			match = candidate
		}
	}
	return match, best, true
}
