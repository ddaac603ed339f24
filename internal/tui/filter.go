package tui

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matches reports whether query is a subsequence of candidate. Callers
// lower-case both sides. An empty query matches everything.
func Matches(candidate, query string) bool {
	return fuzzy.Match(query, candidate)
}

// FilterItems keeps the items whose lower-cased name matches the lower-cased
// query, preserving their order.
func FilterItems(items []Item, query string) []Item {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if Matches(strings.ToLower(item.Name), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
