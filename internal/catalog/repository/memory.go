package repository

import (
	"context"
	"sync"
	"time"

	"github.com/aslanbek/storefront/internal/catalog/domain"
)

// MemoryCatalogRepository holds the fetched catalog in memory together with
// the fetch lifecycle state. The three states (loading, ready, failed) are
// mutually exclusive; a failed fetch leaves the catalog empty.
type MemoryCatalogRepository struct {
	mu        sync.RWMutex
	products  []domain.Product
	byID      map[uint]int // product id -> index into products
	status    domain.Status
	fetchErr  error
	fetchedAt time.Time
}

// NewMemoryCatalogRepository creates an empty repository in the loading state
func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		byID:   make(map[uint]int),
		status: domain.StatusLoading,
	}
}

// BeginLoad marks the catalog as loading and clears any prior error
func (r *MemoryCatalogRepository) BeginLoad(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.status = domain.StatusLoading
	r.fetchErr = nil
}

// StoreProducts replaces the catalog with a successful fetch result
func (r *MemoryCatalogRepository) StoreProducts(_ context.Context, products []domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make([]domain.Product, len(products))
	copy(r.products, products)

	r.byID = make(map[uint]int, len(products))
	for i, p := range r.products {
		r.byID[p.ID] = i
	}

	r.status = domain.StatusReady
	r.fetchErr = nil
	r.fetchedAt = time.Now()
}

// StoreError records a failed fetch, leaving the catalog empty
func (r *MemoryCatalogRepository) StoreError(_ context.Context, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = nil
	r.byID = make(map[uint]int)
	r.status = domain.StatusFailed
	r.fetchErr = err
}

// Snapshot returns a point-in-time copy of the catalog state
func (r *MemoryCatalogRepository) Snapshot(_ context.Context) domain.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, len(r.products))
	copy(products, r.products)

	return domain.Snapshot{
		Products:  products,
		Status:    r.status,
		FetchErr:  r.fetchErr,
		FetchedAt: r.fetchedAt,
	}
}

// FindByID returns the product with the given id from the current catalog
func (r *MemoryCatalogRepository) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	product := r.products[i]
	return &product, nil
}

// Count returns the size of the current catalog
func (r *MemoryCatalogRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}
