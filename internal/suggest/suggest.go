// Package suggest picks the nearest label for "did you mean" hints when
// a query matches nothing.
package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Nearest returns the label with the smallest edit distance to query,
// compared case-insensitively. It reports false when labels is empty or
// when even the best candidate is further away than half the query
// length, which is where a hint stops being helpful.
func Nearest(labels []string, query string) (string, bool) {
	q := strings.ToLower(query)
	best := ""
	bestDist := -1
	for _, label := range labels {
		d := levenshtein.ComputeDistance(q, strings.ToLower(label))
		if bestDist == -1 || d < bestDist {
			best = label
			bestDist = d
		}
	}
	if bestDist == -1 || bestDist > (len([]rune(query))+1)/2 {
		return "", false
	}
	return best, true
}
