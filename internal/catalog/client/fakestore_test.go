package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"title":"Backpack","price":109.95,"category":"men's clothing","image":"img1","rating":{"rate":3.9,"count":120}},
			{"id":2,"title":"T-Shirt","price":22.3,"category":"men's clothing","image":"img2","rating":{"rate":4.1,"count":259}}
		]`))
	}))
	defer server.Close()

	c := NewFakeStoreClient(server.URL)
	products, err := c.FetchProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, "Backpack", products[0].Title)
	assert.Equal(t, 109.95, products[0].Price)
	assert.Equal(t, 3.9, products[0].Rating.Rate)
}

func TestFetchProductsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewFakeStoreClient(server.URL)
	_, err := c.FetchProducts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchProductsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	c := NewFakeStoreClient(server.URL)
	_, err := c.FetchProducts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFetchProductsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewFakeStoreClient(server.URL)
	_, err := c.FetchProducts(context.Background())

	require.Error(t, err)
}
