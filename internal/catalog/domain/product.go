package domain

import (
	"context"
	"errors"
	"time"
)

// Rating is the aggregate review score shipped with every product
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product represents a single catalog entry as returned by the upstream API.
// Products are immutable once fetched; the service never creates or edits them.
type Product struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// CategoryAll is the sentinel meaning "no category filter". It is never a
// value the upstream catalog returns.
const CategoryAll = "all"

// Categories is the fixed set offered by the category selector.
var Categories = []string{
	CategoryAll,
	"electronics",
	"jewelery",
	"men's clothing",
	"women's clothing",
}

// ValidCategory reports whether the value is one of the selectable categories.
// The empty string is accepted and treated as CategoryAll.
func ValidCategory(category string) bool {
	if category == "" {
		return true
	}
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Status describes the catalog lifecycle. The three states are mutually
// exclusive: the catalog is either being fetched, fully present, or absent
// with the last fetch error recorded.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

var (
	// ErrCatalogLoading is returned while the initial (or a manual) fetch is in flight
	ErrCatalogLoading = errors.New("catalog is still loading")

	// ErrCatalogUnavailable is returned when the last fetch failed and no catalog exists
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrProductNotFound is returned for ids absent from the fetched catalog
	ErrProductNotFound = errors.New("product not found")
)

// Snapshot is a point-in-time view of the catalog state.
type Snapshot struct {
	Products  []Product
	Status    Status
	FetchErr  error
	FetchedAt time.Time
}

// CatalogRepository defines the contract for the in-memory catalog state.
// There is no persistence boundary: state is process-local by design. The
// context carries the request trace for the span-decorated implementation.
type CatalogRepository interface {
	BeginLoad(ctx context.Context)
	StoreProducts(ctx context.Context, products []Product)
	StoreError(ctx context.Context, err error)
	Snapshot(ctx context.Context) Snapshot
	FindByID(ctx context.Context, id uint) (*Product, error)
	Count(ctx context.Context) int
}

// ProductSource fetches the full product collection from the upstream API.
type ProductSource interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}
