package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/aslanbek/storefront/internal/catalog/domain"
	"github.com/aslanbek/storefront/pkg/logger"
)

// FakeStoreClient fetches the product collection from a FakeStore-shaped
// REST API. The whole catalog is retrieved in a single request; category
// filtering happens locally, so the upstream per-category endpoints are
// never called.
type FakeStoreClient struct {
	baseURL string
	client  *http.Client
}

// NewFakeStoreClient creates a client for the given API base URL
func NewFakeStoreClient(baseURL string) *FakeStoreClient {
	return &FakeStoreClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// FetchProducts performs one request for the full product collection.
// Transport failures, non-2xx statuses and malformed bodies are all
// reported as errors; there is no retry here.
func (c *FakeStoreClient) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	url := c.baseURL + "/products"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach catalog API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog API returned status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	logger.Logger.Debug().
		Str("url", url).
		Int("count", len(products)).
		Msg("Fetched product catalog")

	return products, nil
}
