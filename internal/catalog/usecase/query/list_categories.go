package query

import "github.com/aslanbek/storefront/internal/catalog/domain"

// ListCategoriesQuery represents the query for the selectable categories
type ListCategoriesQuery struct{}

// ListCategoriesHandler returns the fixed category set. The set is known at
// build time and includes the "all" sentinel.
type ListCategoriesHandler struct{}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler() *ListCategoriesHandler {
	return &ListCategoriesHandler{}
}

// Handle executes the query
func (h *ListCategoriesHandler) Handle(_ ListCategoriesQuery) []string {
	categories := make([]string, len(domain.Categories))
	copy(categories, domain.Categories)
	return categories
}
