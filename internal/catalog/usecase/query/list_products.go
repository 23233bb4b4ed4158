package query

import (
	"context"
	"fmt"

	"github.com/aslanbek/storefront/internal/catalog/domain"
)

// ListProductsQuery represents the query for the visible product list
type ListProductsQuery struct {
	Category string // Optional: sentinel "all" (or empty) matches everything
	Search   string // Optional: case-insensitive substring on the title
}

// ListProductsHandler derives the visible product list from the catalog
type ListProductsHandler struct {
	repo domain.CatalogRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.CatalogRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle recomputes the visible list from the current catalog snapshot.
// An empty result is a valid outcome, distinct from the loading and failed
// states which are reported as errors.
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.Product, error) {
	if !domain.ValidCategory(q.Category) {
		return nil, fmt.Errorf("unknown category %q", q.Category)
	}

	snapshot := h.repo.Snapshot(ctx)
	switch snapshot.Status {
	case domain.StatusLoading:
		return nil, domain.ErrCatalogLoading
	case domain.StatusFailed:
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, snapshot.FetchErr)
	}

	return domain.Filter(snapshot.Products, q.Category, q.Search), nil
}
