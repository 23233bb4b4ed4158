package query

import (
	"context"
	"fmt"

	"github.com/aslanbek/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query to fetch a single product by id
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles single product lookups
type GetProductHandler struct {
	repo domain.CatalogRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.CatalogRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the lookup against the current catalog
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	snapshot := h.repo.Snapshot(ctx)
	switch snapshot.Status {
	case domain.StatusLoading:
		return nil, domain.ErrCatalogLoading
	case domain.StatusFailed:
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, snapshot.FetchErr)
	}

	return h.repo.FindByID(ctx, q.ID)
}
