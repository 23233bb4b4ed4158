package query

import (
	"fmt"

	"github.com/aslanbek/storefront/internal/cart/domain"
)

// GetCartQuery represents the query for a session's cart
type GetCartQuery struct {
	SessionID string
}

// GetCartHandler returns the cart view with its derived totals. Totals are
// recomputed on every read; nothing about them is stored.
type GetCartHandler struct {
	cartRepo domain.CartRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(cartRepo domain.CartRepository) *GetCartHandler {
	return &GetCartHandler{cartRepo: cartRepo}
}

// Handle executes the query
func (h *GetCartHandler) Handle(q GetCartQuery) (domain.CartView, error) {
	if q.SessionID == "" {
		return domain.CartView{}, fmt.Errorf("session id is required")
	}
	return h.cartRepo.GetView(q.SessionID), nil
}
