package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
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

func storeProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Mens Casual Shirt", Price: 22.3, Category: "men's clothing"},
		{ID: 2, Title: "Gold Ring", Price: 168.0, Category: "jewelery"},
		{ID: 3, Title: "Monitor", Price: 599.0, Category: "electronics"},
	}
}

func newTestRouter(source domain.ProductSource, repo domain.CatalogRepository) *mux.Router {
	handler := NewCatalogHandler(source, repo)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router)
	return router
}

func doRequest(router *mux.Router, method, target string) (*httptest.ResponseRecorder, Response) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	return rec, resp
}

func TestListProductsWhileLoading(t *testing.T) {
	router := newTestRouter(&stubSource{}, repository.NewMemoryCatalogRepository())

	rec, resp := doRequest(router, http.MethodGet, "/api/products")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, resp.Success)
}

func TestRefreshThenListProducts(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	router := newTestRouter(&stubSource{products: storeProducts()}, repo)

	rec, resp := doRequest(router, http.MethodPost, "/api/catalog/refresh")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	rec, resp = doRequest(router, http.MethodGet, "/api/products")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(3), data["total"])
}

func TestListProductsFiltering(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	repo.StoreProducts(context.Background(), storeProducts())
	router := newTestRouter(&stubSource{}, repo)

	rec, resp := doRequest(router, http.MethodGet, "/api/products?category=jewelery")
	require.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])

	rec, resp = doRequest(router, http.MethodGet, "/api/products?search=SHIRT")
	require.Equal(t, http.StatusOK, rec.Code)
	data = resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])

	// Zero matches is a valid, empty result
	rec, resp = doRequest(router, http.MethodGet, "/api/products?search=zzz")
	require.Equal(t, http.StatusOK, rec.Code)
	data = resp.Data.(map[string]interface{})
	assert.Equal(t, float64(0), data["total"])
}

func TestListProductsUnknownCategory(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	repo.StoreProducts(context.Background(), storeProducts())
	router := newTestRouter(&stubSource{}, repo)

	rec, resp := doRequest(router, http.MethodGet, "/api/products?category=furniture")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}

func TestGetProduct(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	repo.StoreProducts(context.Background(), storeProducts())
	router := newTestRouter(&stubSource{}, repo)

	rec, resp := doRequest(router, http.MethodGet, "/api/products/2")
	require.Equal(t, http.StatusOK, rec.Code)
	product := resp.Data.(map[string]interface{})
	assert.Equal(t, "Gold Ring", product["title"])

	rec, _ = doRequest(router, http.MethodGet, "/api/products/99")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doRequest(router, http.MethodGet, "/api/products/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCategories(t *testing.T) {
	router := newTestRouter(&stubSource{}, repository.NewMemoryCatalogRepository())

	rec, resp := doRequest(router, http.MethodGet, "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	data := resp.Data.(map[string]interface{})
	categories := data["categories"].([]interface{})
	require.NotEmpty(t, categories)
	assert.Equal(t, "all", categories[0])
}

func TestCatalogStatusLifecycle(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	source := &stubSource{err: errors.New("connection refused")}
	router := newTestRouter(source, repo)

	rec, resp := doRequest(router, http.MethodGet, "/api/catalog/status")
	require.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "loading", data["status"])

	rec, _ = doRequest(router, http.MethodPost, "/api/catalog/refresh")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	_, resp = doRequest(router, http.MethodGet, "/api/catalog/status")
	data = resp.Data.(map[string]interface{})
	assert.Equal(t, "failed", data["status"])
	assert.NotEmpty(t, data["error"])

	// A later refresh recovers
	source.err = nil
	source.products = storeProducts()
	rec, _ = doRequest(router, http.MethodPost, "/api/catalog/refresh")
	require.Equal(t, http.StatusOK, rec.Code)

	_, resp = doRequest(router, http.MethodGet, "/api/catalog/status")
	data = resp.Data.(map[string]interface{})
	assert.Equal(t, "ready", data["status"])
	assert.Equal(t, float64(3), data["product_count"])
}

func TestListProductsAfterFailedFetch(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()
	repo.StoreError(context.Background(), errors.New("boom"))
	router := newTestRouter(&stubSource{}, repo)

	rec, resp := doRequest(router, http.MethodGet, "/api/products")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.False(t, resp.Success)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&stubSource{}, repository.NewMemoryCatalogRepository())

	rec, resp := doRequest(router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}
