// Package similar ranks candidate strings by similarity to a target. It backs
// the "did you mean" suggestions for unknown command names.
package similar

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// cutoff is the minimum similarity score for a candidate to be offered.
const cutoff = 0.5

// Rank returns up to limit candidates similar to target, best match first.
// Ties break alphabetically so the output is stable.
func Rank(target string, candidates []string, limit int) []string {
	if target == "" || limit <= 0 {
		return nil
	}
	target = strings.ToLower(target)

	type scored struct {
		name  string
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		score := similarity(target, strings.ToLower(name))
		if score <= cutoff {
			continue
		}
		ranked = append(ranked, scored{name: name, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score == ranked[j].score {
			return ranked[i].name < ranked[j].name
		}
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.name
	}
	return out
}

func similarity(target, candidate string) float64 {
	if target == candidate {
		return 1.0
	}
	// A typed prefix of a real name is almost certainly what was meant, even
	// when the edit distance is large.
	if strings.HasPrefix(candidate, target) {
		return 0.9
	}
	return levenshtein.Similarity(target, candidate, nil)
}
