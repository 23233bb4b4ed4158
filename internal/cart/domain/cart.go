package domain

import (
	catalogdomain "github.com/aslanbek/storefront/internal/catalog/domain"
)

// CartItem is a catalog product plus the quantity a user intends to buy.
// The quantity is strictly positive while the item is present; an item
// reaching zero is removed, never retained.
type CartItem struct {
	Product  catalogdomain.Product `json:"product"`
	Quantity int                   `json:"quantity"`
}

// Cart models the shopping cart as a mapping from product id to CartItem,
// which makes "at most one entry per product" structural rather than a
// convention, and keeps add/update/remove O(1). Insertion order is tracked
// separately so views stay stable for the UI.
type Cart struct {
	entries map[uint]*CartItem
	order   []uint
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{
		entries: make(map[uint]*CartItem),
	}
}

// AddProduct upserts a product: an existing entry is incremented by one,
// otherwise a new entry with quantity 1 is inserted.
func (c *Cart) AddProduct(product catalogdomain.Product) {
	if item, ok := c.entries[product.ID]; ok {
		item.Quantity++
		return
	}

	c.entries[product.ID] = &CartItem{Product: product, Quantity: 1}
	c.order = append(c.order, product.ID)
}

// UpdateQuantity adds delta (positive or negative) to the entry's quantity,
// floored at zero. An entry whose resulting quantity is zero or less is
// removed in the same operation. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(productID uint, delta int) {
	item, ok := c.entries[productID]
	if !ok {
		return
	}

	item.Quantity += delta
	if item.Quantity <= 0 {
		c.Remove(productID)
	}
}

// Remove unconditionally deletes the entry for the product id, regardless of
// quantity. Unknown ids are a no-op.
func (c *Cart) Remove(productID uint) {
	if _, ok := c.entries[productID]; !ok {
		return
	}

	delete(c.entries, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear removes every entry
func (c *Cart) Clear() {
	c.entries = make(map[uint]*CartItem)
	c.order = nil
}

// Items returns the cart entries in insertion order
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.entries[id])
	}
	return items
}

// Quantity returns the current quantity for a product id, zero when absent
func (c *Cart) Quantity(productID uint) int {
	if item, ok := c.entries[productID]; ok {
		return item.Quantity
	}
	return 0
}

// Len returns the number of distinct entries
func (c *Cart) Len() int {
	return len(c.entries)
}

// TotalItems derives the summed quantity across entries. It is recomputed on
// every read and never stored.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.entries {
		total += item.Quantity
	}
	return total
}

// TotalCost derives the summed price times quantity across entries. It is
// recomputed on every read and never stored.
func (c *Cart) TotalCost() float64 {
	total := 0.0
	for _, item := range c.entries {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// View returns a read-only snapshot of the cart with its derived totals
func (c *Cart) View() CartView {
	return CartView{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalCost:  c.TotalCost(),
	}
}

// CartView is the reportable cart state: items in insertion order plus the
// derived totals.
type CartView struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalCost  float64    `json:"total_cost"`
}

// CartRepository defines the contract for session-keyed cart storage. All
// state is process-local; carts do not survive a restart.
type CartRepository interface {
	AddItem(sessionID string, product catalogdomain.Product) CartView
	UpdateQuantity(sessionID string, productID uint, delta int) CartView
	RemoveItem(sessionID string, productID uint) CartView
	ClearCart(sessionID string)
	GetView(sessionID string) CartView
}
