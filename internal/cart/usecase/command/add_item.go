package command

import (
	"context"
	"fmt"

	"github.com/aslanbek/storefront/internal/cart/domain"
	catalogdomain "github.com/aslanbek/storefront/internal/catalog/domain"
	"github.com/aslanbek/storefront/kafka"
)

// AddItemCommand represents the command to add a catalog product to a cart
type AddItemCommand struct {
	SessionID string
	ProductID uint
}

// AddItemHandler handles the add-to-cart command with upsert semantics:
// an existing entry is incremented, a new product starts at quantity 1.
type AddItemHandler struct {
	cartRepo    domain.CartRepository
	catalogRepo catalogdomain.CatalogRepository
	publisher   CartEventPublisher
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(cartRepo domain.CartRepository, catalogRepo catalogdomain.CatalogRepository, publisher CartEventPublisher) *AddItemHandler {
	return &AddItemHandler{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		publisher:   publisher,
	}
}

// Handle executes the command. The product must exist in the fetched
// catalog; while the catalog is loading or failed there is nothing to add.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (domain.CartView, error) {
	if cmd.SessionID == "" {
		return domain.CartView{}, fmt.Errorf("session id is required")
	}

	snapshot := h.catalogRepo.Snapshot(ctx)
	switch snapshot.Status {
	case catalogdomain.StatusLoading:
		return domain.CartView{}, catalogdomain.ErrCatalogLoading
	case catalogdomain.StatusFailed:
		return domain.CartView{}, fmt.Errorf("%w: %v", catalogdomain.ErrCatalogUnavailable, snapshot.FetchErr)
	}

	product, err := h.catalogRepo.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return domain.CartView{}, err
	}

	view := h.cartRepo.AddItem(cmd.SessionID, *product)

	publishEvent(ctx, h.publisher, kafka.CartActivityEvent{
		EventType:  kafka.EventTypeCartItemAdded,
		SessionID:  cmd.SessionID,
		ProductID:  cmd.ProductID,
		Quantity:   quantityOf(view, cmd.ProductID),
		TotalItems: view.TotalItems,
		TotalCost:  view.TotalCost,
	})

	return view, nil
}

func quantityOf(view domain.CartView, productID uint) int {
	for _, item := range view.Items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}
