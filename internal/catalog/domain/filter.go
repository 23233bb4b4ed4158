package domain

import "strings"

// Filter derives the visible product list from the full catalog, the selected
// category and the free-text search. It is a pure function recomputed on every
// call; no intermediate filter stage is cached, which rules out stale derived
// state between the category and search predicates.
//
// A product is visible when both predicates hold:
//   - category is CategoryAll (or empty) or matches exactly
//   - search is empty or the title contains it, case-insensitively
//
// The result preserves the catalog's original relative order and is never nil.
func Filter(catalog []Product, category, search string) []Product {
	visible := make([]Product, 0, len(catalog))
	needle := strings.ToLower(search)

	for _, p := range catalog {
		if !matchesCategory(p, category) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Title), needle) {
			continue
		}
		visible = append(visible, p)
	}

	return visible
}

func matchesCategory(p Product, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return p.Category == category
}
