package suggest

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the minimum similarity for a candidate to be suggested.
const DefaultThreshold = 0.5

type scored struct {
	name  string
	score float64
}

// Closest returns up to limit candidates whose similarity to name is at least
// DefaultThreshold, best first. Ties keep alphabetical order. Exact matches
// are not suggested.
func Closest(name string, candidates []string, limit int) []string {
	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= DefaultThreshold {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortFunc(ranked, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.name)
	}

	return out
}
