package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aslanbek/storefront/internal/catalog/domain"
	"github.com/aslanbek/storefront/internal/catalog/usecase/command"
	"github.com/aslanbek/storefront/internal/catalog/usecase/query"
	"github.com/aslanbek/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the product catalog using CQRS pattern
type CatalogHandler struct {
	// Command handlers
	refreshHandler *command.RefreshCatalogHandler

	// Query handlers
	listHandler       *query.ListProductsHandler
	getProductHandler *query.GetProductHandler
	categoriesHandler *query.ListCategoriesHandler
	statusHandler     *query.GetStatusHandler

	repo domain.CatalogRepository
}

var (
	metricsOnce    sync.Once
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	catalogSize    prometheus.Gauge
	fetchFailures  prometheus.Counter
)

// registerMetrics registers the Prometheus collectors exactly once so that
// constructing multiple handlers (as the tests do) cannot double-register
func registerMetrics() {
	metricsOnce.Do(func() {
		requestCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_catalog_requests_total",
				Help: "Total number of requests to the catalog endpoints",
			},
			[]string{"method", "endpoint", "status"},
		)

		requestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_catalog_request_duration_seconds",
				Help:    "Duration of catalog requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		)

		catalogSize = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "storefront_catalog_products",
				Help: "Number of products in the fetched catalog",
			},
		)

		fetchFailures = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "storefront_catalog_fetch_failures_total",
				Help: "Total number of failed catalog fetches",
			},
		)

		prometheus.MustRegister(requestCounter)
		prometheus.MustRegister(requestLatency)
		prometheus.MustRegister(catalogSize)
		prometheus.MustRegister(fetchFailures)
	})
}

// NewCatalogHandler creates a new catalog handler (manual DI)
func NewCatalogHandler(source domain.ProductSource, repo domain.CatalogRepository) *CatalogHandler {
	return NewCatalogHandlerWithDI(
		command.NewRefreshCatalogHandler(source, repo),
		query.NewListProductsHandler(repo),
		query.NewGetProductHandler(repo),
		query.NewListCategoriesHandler(),
		query.NewGetStatusHandler(repo),
		repo,
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using dependency injection.
// This is used by Wire for automatic dependency injection.
func NewCatalogHandlerWithDI(
	refreshHandler *command.RefreshCatalogHandler,
	listHandler *query.ListProductsHandler,
	getProductHandler *query.GetProductHandler,
	categoriesHandler *query.ListCategoriesHandler,
	statusHandler *query.GetStatusHandler,
	repo domain.CatalogRepository,
) *CatalogHandler {
	registerMetrics()

	return &CatalogHandler{
		refreshHandler:    refreshHandler,
		listHandler:       listHandler,
		getProductHandler: getProductHandler,
		categoriesHandler: categoriesHandler,
		statusHandler:     statusHandler,
		repo:              repo,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", TracingMiddleware("catalog.list_products", h.ListProducts))).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", TracingMiddleware("catalog.get_product", h.GetProduct))).Methods("GET")
	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", TracingMiddleware("catalog.list_categories", h.ListCategories))).Methods("GET")
	router.HandleFunc("/api/catalog/status", h.metricsMiddleware("/api/catalog/status", h.GetCatalogStatus)).Methods("GET")
	router.HandleFunc("/api/catalog/refresh", h.metricsMiddleware("/api/catalog/refresh", TracingMiddleware("catalog.refresh", h.RefreshCatalog))).Methods("POST")
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	if !domain.ValidCategory(category) {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Unknown category",
		})
		return
	}

	q := query.ListProductsQuery{
		Category: category,
		Search:   search,
	}

	products, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
			"category": category,
			"search":   search,
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	q := query.GetProductQuery{ID: uint(id)}
	product, err := h.getProductHandler.Handle(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Product not found",
			})
			return
		}
		h.respondCatalogError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.categoriesHandler.Handle(query.ListCategoriesQuery{})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"categories": categories,
		},
	})
}

// GetCatalogStatus handles GET /api/catalog/status
func (h *CatalogHandler) GetCatalogStatus(w http.ResponseWriter, r *http.Request) {
	status := h.statusHandler.Handle(r.Context(), query.GetStatusQuery{})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    status,
	})
}

// RefreshCatalog handles POST /api/catalog/refresh. This is the only
// recovery path after a failed fetch: a full reload, not a scoped retry.
func (h *CatalogHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.refreshHandler.Handle(r.Context(), command.RefreshCatalogCommand{}); err != nil {
		fetchFailures.Inc()
		catalogSize.Set(0)
		logger.Error(r.Context()).Err(err).Msg("Catalog refresh failed")
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	count := h.repo.Count(r.Context())
	catalogSize.Set(float64(count))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Catalog refreshed successfully",
		Data: map[string]interface{}{
			"products": count,
		},
	})
}

// RegisterHealthCheck registers the service health endpoint
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Storefront service is healthy",
		})
	}).Methods("GET")
}

// respondCatalogError maps catalog lifecycle errors to HTTP statuses:
// loading is 503 (retry shortly), a failed fetch is 502 (manual refresh needed)
func (h *CatalogHandler) respondCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrCatalogLoading):
		respondJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error:   err.Error(),
		})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   err.Error(),
		})
	default:
		logger.Error(r.Context()).Err(err).Msg("Catalog request failed")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
