package autocomplete

import "strings"

// Filter computes the subset of options visible for a query. The result
// is rebuilt on every pass; implementations should not reorder options
// unless that is the point of the custom filter.
type Filter[T Option] func(options []T, query string) []T

// DefaultFilter matches options whose label contains the query,
// case-insensitively, preserving the original order. An empty query
// matches everything.
func DefaultFilter[T Option](options []T, query string) []T {
	if query == "" {
		return options
	}
	q := strings.ToLower(query)
	matched := make([]T, 0, len(options))
	for _, o := range options {
		if strings.Contains(strings.ToLower(o.Label()), q) {
			matched = append(matched, o)
		}
	}
	return matched
}
