package command

import (
	"context"
	"fmt"

	"github.com/aslanbek/storefront/internal/cart/domain"
	"github.com/aslanbek/storefront/kafka"
)

// ClearCartCommand empties the session's cart
type ClearCartCommand struct {
	SessionID string
}

// ClearCartHandler handles cart clearing
type ClearCartHandler struct {
	cartRepo  domain.CartRepository
	publisher CartEventPublisher
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(cartRepo domain.CartRepository, publisher CartEventPublisher) *ClearCartHandler {
	return &ClearCartHandler{cartRepo: cartRepo, publisher: publisher}
}

// Handle executes the command
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if cmd.SessionID == "" {
		return fmt.Errorf("session id is required")
	}

	h.cartRepo.ClearCart(cmd.SessionID)

	publishEvent(ctx, h.publisher, kafka.CartActivityEvent{
		EventType: kafka.EventTypeCartCleared,
		SessionID: cmd.SessionID,
	})

	return nil
}
