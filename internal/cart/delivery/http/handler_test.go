package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartrepo "github.com/aslanbek/storefront/internal/cart/repository"
	"github.com/aslanbek/storefront/internal/cart/usecase/command"
	"github.com/aslanbek/storefront/internal/cart/usecase/query"
	catalogdomain "github.com/aslanbek/storefront/internal/catalog/domain"
	catalogrepo "github.com/aslanbek/storefront/internal/catalog/repository"
)

func newTestRouter(catalogRepo catalogdomain.CatalogRepository) *mux.Router {
	cartRepo := cartrepo.NewMemoryCartRepository()

	handler := NewCartHandler(
		command.NewAddItemHandler(cartRepo, catalogRepo, nil),
		command.NewUpdateQuantityHandler(cartRepo, nil),
		command.NewRemoveItemHandler(cartRepo, nil),
		command.NewClearCartHandler(cartRepo, nil),
		query.NewGetCartHandler(cartRepo),
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func readyCatalog() *catalogrepo.MemoryCatalogRepository {
	repo := catalogrepo.NewMemoryCatalogRepository()
	repo.StoreProducts(context.Background(), []catalogdomain.Product{
		{ID: 1, Title: "Backpack", Price: 10.0, Category: "men's clothing"},
		{ID: 2, Title: "Gold Ring", Price: 5.0, Category: "jewelery"},
	})
	return repo
}

func doRequest(router *mux.Router, method, target, session, body string) (*httptest.ResponseRecorder, Response) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if session != "" {
		req.Header.Set(SessionHeaderName, session)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	return rec, resp
}

func cartData(t *testing.T, resp Response) map[string]interface{} {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "expected cart payload, got %#v", resp.Data)
	return data
}

func TestGetCartMintsASession(t *testing.T) {
	router := newTestRouter(readyCatalog())

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestGetCartReusesTheCookieSession(t *testing.T) {
	router := newTestRouter(readyCatalog())

	rec, _ := doRequest(router, http.MethodPost, "/api/cart/items", "cookie-session", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-session"})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp Response
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, float64(1), cartData(t, resp)["total_items"])

	// No new cookie is set when the session already exists
	assert.Empty(t, recorder.Result().Cookies())
}

func TestAddItem(t *testing.T) {
	router := newTestRouter(readyCatalog())

	rec, resp := doRequest(router, http.MethodPost, "/api/cart/items", "s", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)
	assert.Equal(t, float64(1), cartData(t, resp)["total_items"])

	rec, resp = doRequest(router, http.MethodPost, "/api/cart/items", "s", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	data := cartData(t, resp)
	assert.Equal(t, float64(2), data["total_items"])
	assert.InDelta(t, 20.0, data["total_cost"].(float64), 1e-9)

	items := data["items"].([]interface{})
	assert.Len(t, items, 1)
}

func TestAddItemUnknownProduct(t *testing.T) {
	router := newTestRouter(readyCatalog())

	rec, resp := doRequest(router, http.MethodPost, "/api/cart/items", "s", `{"product_id":42}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
}

func TestAddItemWhileCatalogLoading(t *testing.T) {
	router := newTestRouter(catalogrepo.NewMemoryCatalogRepository())

	rec, _ := doRequest(router, http.MethodPost, "/api/cart/items", "s", `{"product_id":1}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAddItemInvalidBody(t *testing.T) {
	router := newTestRouter(readyCatalog())

	rec, _ := doRequest(router, http.MethodPost, "/api/cart/items", "s", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateQuantity(t *testing.T) {
	router := newTestRouter(readyCatalog())

	_, _ = doRequest(router, http.MethodPost, "/api/cart/items", "s", `{"product_id":1}`)

	rec, resp := doRequest(router, http.MethodPatch, "/api/cart/items/1", "s", `{"delta":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), cartData(t, resp)["total_items"])

	// A negative delta reaching zero removes the entry
	rec, resp = doRequest(router, http.MethodPatch, "/api/cart/items/1", "s", `{"delta":-3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	data := cartData(t, resp)
	assert.Equal(t, float64(0), data["total_items"])
	assert.Empty(t, data["items"])
}

func TestRemoveItem(t *testing.T) {
	router := newTestRouter(readyCatalog())

	_, _ = doRequest(router, http.MethodPost, "/api/cart/items", "s", `{"product_id":1}`)
	_, _ = doRequest(router, http.MethodPost, "/api/cart/items", "s", `{"product_id":1}`)

	rec, resp := doRequest(router, http.MethodDelete, "/api/cart/items/1", "s", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, cartData(t, resp)["items"])
}

func TestClearCart(t *testing.T) {
	router := newTestRouter(readyCatalog())

	_, _ = doRequest(router, http.MethodPost, "/api/cart/items", "s", `{"product_id":1}`)
	_, _ = doRequest(router, http.MethodPost, "/api/cart/items", "s", `{"product_id":2}`)

	rec, resp := doRequest(router, http.MethodDelete, "/api/cart", "s", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	_, resp = doRequest(router, http.MethodGet, "/api/cart", "s", "")
	assert.Equal(t, float64(0), cartData(t, resp)["total_items"])
}

func TestSessionsDoNotShareCarts(t *testing.T) {
	router := newTestRouter(readyCatalog())

	_, _ = doRequest(router, http.MethodPost, "/api/cart/items", "alice", `{"product_id":1}`)

	_, resp := doRequest(router, http.MethodGet, "/api/cart", "bob", "")
	assert.Equal(t, float64(0), cartData(t, resp)["total_items"])
}

func TestCheckoutNotImplemented(t *testing.T) {
	router := newTestRouter(readyCatalog())

	rec, resp := doRequest(router, http.MethodPost, "/api/cart/checkout", "s", "")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.False(t, resp.Success)
}
