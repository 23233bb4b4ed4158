package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanbek/storefront/internal/catalog/domain"
	"github.com/aslanbek/storefront/internal/catalog/usecase/command"
)

type countingSource struct {
	calls    int
	products []domain.Product
}

func (s *countingSource) FetchProducts(context.Context) ([]domain.Product, error) {
	s.calls++
	return s.products, nil
}

func TestStartupFetchSharesTheInjectedSource(t *testing.T) {
	source := &countingSource{products: []domain.Product{
		{ID: 1, Title: "Backpack", Category: "men's clothing"},
	}}
	repo := ProvideCatalogRepository()

	handler, err := InitializeHTTPHandler(source, repo)
	require.NoError(t, err)
	require.NotNil(t, handler)

	// The startup fetch runs against the same source and repository the
	// handler was wired with, so one upstream client serves both paths
	refresh := command.NewRefreshCatalogHandler(source, repo)
	require.NoError(t, refresh.Handle(context.Background(), command.RefreshCatalogCommand{}))

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 1, repo.Count(context.Background()))
	assert.Equal(t, domain.StatusReady, repo.Snapshot(context.Background()).Status)
}
