package journal

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter returns the indices of titles matching the query, preserving
// display order. An empty or whitespace-only query matches everything.
func Filter(query string, titles []string) []int {
	indices := make([]int, 0, len(titles))
	trimmed := strings.TrimSpace(query)
	for i, title := range titles {
		if trimmed == "" || fuzzy.MatchNormalizedFold(trimmed, title) {
			indices = append(indices, i)
		}
	}
	return indices
}
