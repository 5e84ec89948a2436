package match

import (
	"sort"
)

// DefaultMinSimilarity is the lowest normalized similarity a candidate
// needs to be suggested.
const DefaultMinSimilarity = 0.5

// DefaultMaxSuggestions caps the number of suggestions returned by Closest.
const DefaultMaxSuggestions = 3

type scored struct {
	name  string
	score float64
}

// Closest returns up to limit candidates similar to name, best first.
// Ties are broken by candidate order so results are deterministic.
// An exact match yields no suggestions.
func Closest(name string, candidates []string, limit int) []string {
	if limit <= 0 {
		limit = DefaultMaxSuggestions
	}

	norm := NormalizeIdent(name)

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			return nil
		}

		s := Similarity(norm, NormalizeIdent(c))
		if s >= DefaultMinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for i := 0; i < len(ranked) && i < limit; i++ {
		out = append(out, ranked[i].name)
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
