package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanbek/storefront/internal/catalog/domain"
	"github.com/aslanbek/storefront/internal/catalog/repository"
)

func readyRepo() *repository.MemoryCatalogRepository {
	repo := repository.NewMemoryCatalogRepository()
	repo.StoreProducts(context.Background(), []domain.Product{
		{ID: 1, Title: "Mens Casual Shirt", Category: "men's clothing"},
		{ID: 2, Title: "Gold Ring", Category: "jewelery"},
		{ID: 3, Title: "Monitor", Category: "electronics"},
	})
	return repo
}

func TestListProductsWhileLoading(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	handler := NewListProductsHandler(repo)

	_, err := handler.Handle(context.Background(), ListProductsQuery{})
	assert.ErrorIs(t, err, domain.ErrCatalogLoading)
}

func TestListProductsAfterFailedFetch(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	repo.StoreError(context.Background(), errors.New("boom"))
	handler := NewListProductsHandler(repo)

	_, err := handler.Handle(context.Background(), ListProductsQuery{})
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestListProductsFilters(t *testing.T) {
	handler := NewListProductsHandler(readyRepo())

	products, err := handler.Handle(context.Background(), ListProductsQuery{Category: "jewelery"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, uint(2), products[0].ID)

	products, err = handler.Handle(context.Background(), ListProductsQuery{Search: "SHIRT"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, uint(1), products[0].ID)
}

func TestListProductsUnknownCategory(t *testing.T) {
	handler := NewListProductsHandler(readyRepo())

	_, err := handler.Handle(context.Background(), ListProductsQuery{Category: "furniture"})
	assert.Error(t, err)
}

func TestListProductsEmptyResultIsNotAnError(t *testing.T) {
	handler := NewListProductsHandler(readyRepo())

	products, err := handler.Handle(context.Background(), ListProductsQuery{Search: "no-such-title"})
	require.NoError(t, err)
	require.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGetProduct(t *testing.T) {
	handler := NewGetProductHandler(readyRepo())

	product, err := handler.Handle(context.Background(), GetProductQuery{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, "Monitor", product.Title)

	_, err = handler.Handle(context.Background(), GetProductQuery{ID: 42})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestListCategoriesIncludesSentinelFirst(t *testing.T) {
	handler := NewListCategoriesHandler()

	categories := handler.Handle(ListCategoriesQuery{})
	require.NotEmpty(t, categories)
	assert.Equal(t, domain.CategoryAll, categories[0])
	assert.Contains(t, categories, "electronics")
}

func TestGetStatus(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	handler := NewGetStatusHandler(repo)

	status := handler.Handle(context.Background(), GetStatusQuery{})
	assert.Equal(t, domain.StatusLoading, status.Status)
	assert.Zero(t, status.ProductCount)

	repo.StoreProducts(context.Background(), []domain.Product{{ID: 1, Title: "Backpack"}})
	status = handler.Handle(context.Background(), GetStatusQuery{})
	assert.Equal(t, domain.StatusReady, status.Status)
	assert.Equal(t, 1, status.ProductCount)
	require.NotNil(t, status.LastFetched)
}
