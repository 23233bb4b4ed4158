package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aslanbek/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// MemoryCatalogRepositoryWithTracing wraps MemoryCatalogRepository with tracing
type MemoryCatalogRepositoryWithTracing struct {
	*MemoryCatalogRepository
}

// NewMemoryCatalogRepositoryWithTracing creates a new repository with tracing
func NewMemoryCatalogRepositoryWithTracing() *MemoryCatalogRepositoryWithTracing {
	return &MemoryCatalogRepositoryWithTracing{
		MemoryCatalogRepository: NewMemoryCatalogRepository(),
	}
}

// StoreProducts records a successful fetch with tracing
func (r *MemoryCatalogRepositoryWithTracing) StoreProducts(ctx context.Context, products []domain.Product) {
	ctx, span := tracer.Start(ctx, "repository.StoreProducts",
		trace.WithAttributes(
			attribute.Int("catalog.size", len(products)),
		),
	)
	defer span.End()

	r.MemoryCatalogRepository.StoreProducts(ctx, products)
}

// StoreError records a failed fetch with tracing
func (r *MemoryCatalogRepositoryWithTracing) StoreError(ctx context.Context, fetchErr error) {
	ctx, span := tracer.Start(ctx, "repository.StoreError")
	defer span.End()

	span.RecordError(fetchErr)
	span.SetStatus(codes.Error, fetchErr.Error())

	r.MemoryCatalogRepository.StoreError(ctx, fetchErr)
}

// Snapshot reads the catalog state with tracing
func (r *MemoryCatalogRepositoryWithTracing) Snapshot(ctx context.Context) domain.Snapshot {
	ctx, span := tracer.Start(ctx, "repository.Snapshot")
	defer span.End()

	snapshot := r.MemoryCatalogRepository.Snapshot(ctx)

	span.SetAttributes(
		attribute.String("catalog.status", string(snapshot.Status)),
		attribute.Int("catalog.size", len(snapshot.Products)),
	)
	return snapshot
}

// FindByID looks up a product with tracing
func (r *MemoryCatalogRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
		),
	)
	defer span.End()

	product, err := r.MemoryCatalogRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.title", product.Title),
		attribute.String("product.category", product.Category),
	)
	return product, nil
}
