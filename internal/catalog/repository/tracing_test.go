package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/aslanbek/storefront/internal/catalog/domain"
)

func TestRepositoryOperationsEmitSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	repo := NewMemoryCatalogRepositoryWithTracing()
	ctx := context.Background()

	repo.StoreProducts(ctx, []domain.Product{{ID: 1, Title: "Backpack", Category: "men's clothing"}})
	_, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	repo.Snapshot(ctx)

	names := make([]string, 0)
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	assert.Contains(t, names, "repository.StoreProducts")
	assert.Contains(t, names, "repository.FindByID")
	assert.Contains(t, names, "repository.Snapshot")
}

func TestTracedRepositorySatisfiesTheContract(t *testing.T) {
	var repo domain.CatalogRepository = NewMemoryCatalogRepositoryWithTracing()
	ctx := context.Background()

	repo.StoreProducts(ctx, testProducts())
	assert.Equal(t, 3, repo.Count(ctx))

	product, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "T-Shirt", product.Title)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
