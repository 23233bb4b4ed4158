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

	"github.com/aslanbek/storefront/internal/cart/usecase/command"
	"github.com/aslanbek/storefront/internal/cart/usecase/query"
	catalogdomain "github.com/aslanbek/storefront/internal/catalog/domain"
	"github.com/aslanbek/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the shopping cart using CQRS pattern
type CartHandler struct {
	// Command handlers
	addHandler    *command.AddItemHandler
	updateHandler *command.UpdateQuantityHandler
	removeHandler *command.RemoveItemHandler
	clearHandler  *command.ClearCartHandler

	// Query handlers
	getHandler *query.GetCartHandler
}

var (
	metricsOnce    sync.Once
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	cartMutations  *prometheus.CounterVec
)

// registerMetrics registers the Prometheus collectors exactly once so that
// constructing multiple handlers (as the tests do) cannot double-register
func registerMetrics() {
	metricsOnce.Do(func() {
		requestCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_cart_requests_total",
				Help: "Total number of requests to the cart endpoints",
			},
			[]string{"method", "endpoint", "status"},
		)

		requestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_cart_request_duration_seconds",
				Help:    "Duration of cart requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		)

		cartMutations = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_cart_mutations_total",
				Help: "Total number of cart mutations by operation",
			},
			[]string{"operation"},
		)

		prometheus.MustRegister(requestCounter)
		prometheus.MustRegister(requestLatency)
		prometheus.MustRegister(cartMutations)
	})
}

// NewCartHandler creates a new cart handler using dependency injection.
// This is used by Wire for automatic dependency injection.
func NewCartHandler(
	addHandler *command.AddItemHandler,
	updateHandler *command.UpdateQuantityHandler,
	removeHandler *command.RemoveItemHandler,
	clearHandler *command.ClearCartHandler,
	getHandler *query.GetCartHandler,
) *CartHandler {
	registerMetrics()

	return &CartHandler{
		addHandler:    addHandler,
		updateHandler: updateHandler,
		removeHandler: removeHandler,
		clearHandler:  clearHandler,
		getHandler:    getHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// AddItemRequest is the body for POST /api/cart/items
type AddItemRequest struct {
	ProductID uint `json:"product_id"`
}

// UpdateQuantityRequest is the body for PATCH /api/cart/items/{id}.
// Delta is a signed adjustment, not an absolute quantity.
type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
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
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the cart routes. Every route runs behind the
// session middleware so handlers can rely on a session id being present.
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	sub := router.PathPrefix("/api/cart").Subrouter()
	sub.Use(SessionMiddleware)

	sub.HandleFunc("", h.metricsMiddleware("/api/cart", TracingMiddleware("cart.get", h.GetCart))).Methods("GET")
	sub.HandleFunc("", h.metricsMiddleware("/api/cart", TracingMiddleware("cart.clear", h.ClearCart))).Methods("DELETE")
	sub.HandleFunc("/items", h.metricsMiddleware("/api/cart/items", TracingMiddleware("cart.add_item", h.AddItem))).Methods("POST")
	sub.HandleFunc("/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", TracingMiddleware("cart.update_quantity", h.UpdateQuantity))).Methods("PATCH")
	sub.HandleFunc("/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", TracingMiddleware("cart.remove_item", h.RemoveItem))).Methods("DELETE")
	sub.HandleFunc("/checkout", h.metricsMiddleware("/api/cart/checkout", h.Checkout)).Methods("POST")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.getHandler.Handle(query.GetCartQuery{SessionID: SessionFromContext(r.Context())})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.AddItemCommand{
		SessionID: SessionFromContext(r.Context()),
		ProductID: req.ProductID,
	}

	view, err := h.addHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	cartMutations.WithLabelValues("add").Inc()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    view,
	})
}

// UpdateQuantity handles PATCH /api/cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateQuantityCommand{
		SessionID: SessionFromContext(r.Context()),
		ProductID: uint(id),
		Delta:     req.Delta,
	}

	view, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	cartMutations.WithLabelValues("update").Inc()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	cmd := command.RemoveItemCommand{
		SessionID: SessionFromContext(r.Context()),
		ProductID: uint(id),
	}

	view, err := h.removeHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	cartMutations.WithLabelValues("remove").Inc()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    view,
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cmd := command.ClearCartCommand{SessionID: SessionFromContext(r.Context())}

	if err := h.clearHandler.Handle(r.Context(), cmd); err != nil {
		h.respondCartError(w, r, err)
		return
	}

	cartMutations.WithLabelValues("clear").Inc()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

// Checkout handles POST /api/cart/checkout. Ordering and payment are out of
// scope; the endpoint exists so clients get a stable answer instead of a 404.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusNotImplemented, Response{
		Success: false,
		Error:   "Checkout is not implemented",
	})
}

// respondCartError maps command errors to HTTP statuses. Cart mutations
// share the catalog lifecycle statuses since adding requires a fetched catalog.
func (h *CartHandler) respondCartError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
	case errors.Is(err, catalogdomain.ErrCatalogLoading):
		respondJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error:   err.Error(),
		})
	case errors.Is(err, catalogdomain.ErrCatalogUnavailable):
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   err.Error(),
		})
	default:
		logger.Error(r.Context()).Err(err).Msg("Cart request failed")
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
