package command

import (
	"context"
	"fmt"

	"github.com/aslanbek/storefront/internal/catalog/domain"
	"github.com/aslanbek/storefront/pkg/logger"
)

// RefreshCatalogCommand represents the command to (re)load the full catalog
type RefreshCatalogCommand struct{}

// RefreshCatalogHandler performs the single upstream fetch that populates the
// catalog. There is no automatic retry: a failed fetch leaves the repository
// in the failed state until this command is issued again.
type RefreshCatalogHandler struct {
	source domain.ProductSource
	repo   domain.CatalogRepository
}

// NewRefreshCatalogHandler creates a new refresh catalog handler
func NewRefreshCatalogHandler(source domain.ProductSource, repo domain.CatalogRepository) *RefreshCatalogHandler {
	return &RefreshCatalogHandler{source: source, repo: repo}
}

// Handle executes the refresh: the repository enters the loading state, then
// either the decoded product list or the fetch error is stored. Loading and
// error states never coexist with a populated catalog.
func (h *RefreshCatalogHandler) Handle(ctx context.Context, _ RefreshCatalogCommand) error {
	h.repo.BeginLoad(ctx)

	products, err := h.source.FetchProducts(ctx)
	if err != nil {
		h.repo.StoreError(ctx, err)
		logger.Error(ctx).Err(err).Msg("Catalog fetch failed")
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	h.repo.StoreProducts(ctx, products)
	logger.Info(ctx).Int("count", len(products)).Msg("Catalog loaded")
	return nil
}
