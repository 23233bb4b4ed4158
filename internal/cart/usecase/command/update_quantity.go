package command

import (
	"context"
	"fmt"

	"github.com/aslanbek/storefront/internal/cart/domain"
	"github.com/aslanbek/storefront/kafka"
)

// UpdateQuantityCommand adjusts an entry's quantity by a signed delta
type UpdateQuantityCommand struct {
	SessionID string
	ProductID uint
	Delta     int
}

// UpdateQuantityHandler handles quantity adjustment. The operation is total:
// unknown product ids are a no-op, and an entry driven to zero or below is
// removed rather than kept at zero.
type UpdateQuantityHandler struct {
	cartRepo  domain.CartRepository
	publisher CartEventPublisher
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(cartRepo domain.CartRepository, publisher CartEventPublisher) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{cartRepo: cartRepo, publisher: publisher}
}

// Handle executes the command
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (domain.CartView, error) {
	if cmd.SessionID == "" {
		return domain.CartView{}, fmt.Errorf("session id is required")
	}

	view := h.cartRepo.UpdateQuantity(cmd.SessionID, cmd.ProductID, cmd.Delta)

	publishEvent(ctx, h.publisher, kafka.CartActivityEvent{
		EventType:  kafka.EventTypeCartItemUpdated,
		SessionID:  cmd.SessionID,
		ProductID:  cmd.ProductID,
		Quantity:   quantityOf(view, cmd.ProductID),
		TotalItems: view.TotalItems,
		TotalCost:  view.TotalCost,
	})

	return view, nil
}
