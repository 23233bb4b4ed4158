package command

import (
	"context"
	"fmt"

	"github.com/aslanbek/storefront/internal/cart/domain"
	"github.com/aslanbek/storefront/kafka"
)

// RemoveItemCommand unconditionally removes an entry from the cart
type RemoveItemCommand struct {
	SessionID string
	ProductID uint
}

// RemoveItemHandler handles item removal; unknown ids are a no-op
type RemoveItemHandler struct {
	cartRepo  domain.CartRepository
	publisher CartEventPublisher
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(cartRepo domain.CartRepository, publisher CartEventPublisher) *RemoveItemHandler {
	return &RemoveItemHandler{cartRepo: cartRepo, publisher: publisher}
}

// Handle executes the command
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (domain.CartView, error) {
	if cmd.SessionID == "" {
		return domain.CartView{}, fmt.Errorf("session id is required")
	}

	view := h.cartRepo.RemoveItem(cmd.SessionID, cmd.ProductID)

	publishEvent(ctx, h.publisher, kafka.CartActivityEvent{
		EventType:  kafka.EventTypeCartItemRemoved,
		SessionID:  cmd.SessionID,
		ProductID:  cmd.ProductID,
		TotalItems: view.TotalItems,
		TotalCost:  view.TotalCost,
	})

	return view, nil
}
