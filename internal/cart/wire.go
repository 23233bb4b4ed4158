//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"

	"github.com/aslanbek/storefront/internal/cart/delivery/http"
	"github.com/aslanbek/storefront/internal/cart/domain"
	"github.com/aslanbek/storefront/internal/cart/repository"
	"github.com/aslanbek/storefront/internal/cart/usecase/command"
	"github.com/aslanbek/storefront/internal/cart/usecase/query"
	catalogdomain "github.com/aslanbek/storefront/internal/catalog/domain"
)

// ProvideCartRepository provides the in-memory session-keyed cart repository
func ProvideCartRepository() domain.CartRepository {
	return repository.NewMemoryCartRepository()
}

// Wire sets
var UsecaseSet = wire.NewSet(
	command.NewAddItemHandler,
	command.NewUpdateQuantityHandler,
	command.NewRemoveItemHandler,
	command.NewClearCartHandler,
	query.NewGetCartHandler,
)

// InitializeHTTPHandler initializes the cart HTTP handler. The catalog
// repository is shared with the catalog module; the publisher may be nil
// when Kafka is not configured.
func InitializeHTTPHandler(catalogRepo catalogdomain.CatalogRepository, publisher command.CartEventPublisher) (*http.CartHandler, error) {
	wire.Build(
		ProvideCartRepository,
		UsecaseSet,
		http.NewCartHandler,
	)
	return nil, nil
}
