package repository

import (
	"sync"

	"github.com/aslanbek/storefront/internal/cart/domain"
	catalogdomain "github.com/aslanbek/storefront/internal/catalog/domain"
)

// MemoryCartRepository implements CartRepository with in-memory storage.
// Every mutation runs under one lock, so concurrent requests for the same
// session see each operation as a discrete, non-overlapping update.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart // sessionID -> cart
}

// NewMemoryCartRepository creates a new in-memory cart store
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string]*domain.Cart),
	}
}

// AddItem upserts a product into the session's cart
func (r *MemoryCartRepository) AddItem(sessionID string, product catalogdomain.Product) domain.CartView {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.cartLocked(sessionID)
	cart.AddProduct(product)
	return cart.View()
}

// UpdateQuantity adjusts an entry's quantity by delta, removing it at zero
func (r *MemoryCartRepository) UpdateQuantity(sessionID string, productID uint, delta int) domain.CartView {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.cartLocked(sessionID)
	cart.UpdateQuantity(productID, delta)
	r.dropIfEmptyLocked(sessionID, cart)
	return cart.View()
}

// RemoveItem deletes an entry regardless of quantity
func (r *MemoryCartRepository) RemoveItem(sessionID string, productID uint) domain.CartView {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.cartLocked(sessionID)
	cart.Remove(productID)
	r.dropIfEmptyLocked(sessionID, cart)
	return cart.View()
}

// ClearCart removes every entry for the session
func (r *MemoryCartRepository) ClearCart(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
}

// GetView returns the session's cart with derived totals. Sessions without
// a cart get an empty view, not an error.
func (r *MemoryCartRepository) GetView(sessionID string) domain.CartView {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return domain.CartView{Items: []domain.CartItem{}}
	}
	return cart.View()
}

// SessionCount returns the number of sessions holding a non-empty cart
func (r *MemoryCartRepository) SessionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}

func (r *MemoryCartRepository) cartLocked(sessionID string) *domain.Cart {
	cart, ok := r.carts[sessionID]
	if !ok {
		cart = domain.NewCart()
		r.carts[sessionID] = cart
	}
	return cart
}

func (r *MemoryCartRepository) dropIfEmptyLocked(sessionID string, cart *domain.Cart) {
	if cart.Len() == 0 {
		delete(r.carts, sessionID)
	}
}
