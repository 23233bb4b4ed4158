//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/aslanbek/storefront/internal/catalog/client"
	"github.com/aslanbek/storefront/internal/catalog/delivery/http"
	"github.com/aslanbek/storefront/internal/catalog/domain"
	"github.com/aslanbek/storefront/internal/catalog/repository"
	"github.com/aslanbek/storefront/internal/catalog/usecase/command"
	"github.com/aslanbek/storefront/internal/catalog/usecase/query"
)

// ProvideCatalogRepository provides the in-memory catalog repository.
// Called by main so the single instance can be shared with the cart module.
func ProvideCatalogRepository() domain.CatalogRepository {
	return repository.NewMemoryCatalogRepositoryWithTracing()
}

// ProvideProductSource provides the upstream catalog API client.
// Called by main so the single client can also serve the startup fetch.
func ProvideProductSource(apiURL string) domain.ProductSource {
	return client.NewFakeStoreClient(apiURL)
}

// Wire sets
var UsecaseSet = wire.NewSet(
	command.NewRefreshCatalogHandler,
	query.NewListProductsHandler,
	query.NewGetProductHandler,
	query.NewListCategoriesHandler,
	query.NewGetStatusHandler,
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all dependencies
func InitializeHTTPHandler(source domain.ProductSource, repo domain.CatalogRepository) (*http.CatalogHandler, error) {
	wire.Build(
		UsecaseSet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}
