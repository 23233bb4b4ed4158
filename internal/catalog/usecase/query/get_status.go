package query

import (
	"context"
	"time"

	"github.com/aslanbek/storefront/internal/catalog/domain"
)

// GetStatusQuery represents the query for the catalog lifecycle state
type GetStatusQuery struct{}

// CatalogStatus is the reportable catalog state
type CatalogStatus struct {
	Status       domain.Status `json:"status"`
	ProductCount int           `json:"product_count"`
	LastFetched  *time.Time    `json:"last_fetched,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// GetStatusHandler reports whether the catalog is loading, ready or failed
type GetStatusHandler struct {
	repo domain.CatalogRepository
}

// NewGetStatusHandler creates a new get status handler
func NewGetStatusHandler(repo domain.CatalogRepository) *GetStatusHandler {
	return &GetStatusHandler{repo: repo}
}

// Handle executes the query
func (h *GetStatusHandler) Handle(ctx context.Context, _ GetStatusQuery) CatalogStatus {
	snapshot := h.repo.Snapshot(ctx)

	status := CatalogStatus{
		Status:       snapshot.Status,
		ProductCount: len(snapshot.Products),
	}
	if !snapshot.FetchedAt.IsZero() {
		t := snapshot.FetchedAt
		status.LastFetched = &t
	}
	if snapshot.FetchErr != nil {
		status.Error = snapshot.FetchErr.Error()
	}
	return status
}
