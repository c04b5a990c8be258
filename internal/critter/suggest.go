package critter

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestions = 3

type suggestion struct {
	name string
	dist int
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// suggest returns names close to a query that matched nothing, comparing
// against the whole name and each of its words.
func suggest(names []string, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 3 {
		return nil
	}
	limit := suggestionLimit(len(q))

	var found []suggestion
	for _, name := range names {
		n := strings.ToLower(name)
		dist := levenshtein.ComputeDistance(q, n)
		for _, word := range strings.Fields(n) {
			dist = min(dist, levenshtein.ComputeDistance(q, word))
		}
		if dist > limit {
			continue
		}
		found = append(found, suggestion{name: name, dist: dist})
	}

	slices.SortFunc(found, func(a, b suggestion) int {
		return cmp.Or(cmp.Compare(a.dist, b.dist), cmp.Compare(a.name, b.name))
	})

	out := make([]string, 0, min(len(found), maxSuggestions))
	for _, s := range found[:min(len(found), maxSuggestions)] {
		out = append(out, s.name)
	}
	return out
}
