package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanbek/storefront/internal/catalog/domain"
	"github.com/aslanbek/storefront/internal/catalog/repository"
)

type stubSource struct {
	products []domain.Product
	err      error
}

func (s *stubSource) FetchProducts(context.Context) ([]domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func TestRefreshStoresFetchedCatalog(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	source := &stubSource{products: []domain.Product{
		{ID: 1, Title: "Backpack", Category: "men's clothing"},
		{ID: 2, Title: "Gold Ring", Category: "jewelery"},
	}}

	handler := NewRefreshCatalogHandler(source, repo)
	err := handler.Handle(context.Background(), RefreshCatalogCommand{})

	require.NoError(t, err)
	snapshot := repo.Snapshot(context.Background())
	assert.Equal(t, domain.StatusReady, snapshot.Status)
	assert.Len(t, snapshot.Products, 2)
}

func TestRefreshFailureLeavesCatalogFailedAndEmpty(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	source := &stubSource{err: errors.New("connection refused")}

	handler := NewRefreshCatalogHandler(source, repo)
	err := handler.Handle(context.Background(), RefreshCatalogCommand{})

	require.Error(t, err)
	snapshot := repo.Snapshot(context.Background())
	assert.Equal(t, domain.StatusFailed, snapshot.Status)
	assert.Error(t, snapshot.FetchErr)
	assert.Empty(t, snapshot.Products)
}

func TestRefreshRecoversFromEarlierFailure(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	source := &stubSource{err: errors.New("connection refused")}
	handler := NewRefreshCatalogHandler(source, repo)

	require.Error(t, handler.Handle(context.Background(), RefreshCatalogCommand{}))

	source.err = nil
	source.products = []domain.Product{{ID: 7, Title: "Monitor", Category: "electronics"}}

	require.NoError(t, handler.Handle(context.Background(), RefreshCatalogCommand{}))
	snapshot := repo.Snapshot(context.Background())
	assert.Equal(t, domain.StatusReady, snapshot.Status)
	assert.NoError(t, snapshot.FetchErr)
	assert.Len(t, snapshot.Products, 1)
}

func TestRefreshEmptyCatalogIsReady(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	source := &stubSource{products: []domain.Product{}}

	handler := NewRefreshCatalogHandler(source, repo)
	require.NoError(t, handler.Handle(context.Background(), RefreshCatalogCommand{}))

	assert.Equal(t, domain.StatusReady, repo.Snapshot(context.Background()).Status)
	assert.Zero(t, repo.Count(context.Background()))
}
