package http

// GetCart godoc
// @Summary Get the cart
// @Description Get the session's cart with derived totals (item count and cost)
// @Tags Cart
// @Produce json
// @Param X-Session-Id header string false "Cart session id; a cookie is set when omitted"
// @Success 200 {object} object{success=bool,data=object{items=array,total_items=int,total_cost=number}}
// @Router /api/cart [get]
func (h *CartHandler) GetCartDoc() {}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Upsert the product into the cart: a new entry starts at quantity 1, an existing entry is incremented
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Product to add"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /api/cart/items [post]
func (h *CartHandler) AddItemDoc() {}

// UpdateQuantity godoc
// @Summary Adjust an entry's quantity
// @Description Apply a signed delta to the entry's quantity; an entry driven to zero or below is removed
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body UpdateQuantityRequest true "Signed quantity delta"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantityDoc() {}

// RemoveItem godoc
// @Summary Remove an entry from the cart
// @Description Remove the entry regardless of its quantity; unknown ids are a no-op
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Router /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItemDoc() {}

// ClearCart godoc
// @Summary Clear the cart
// @Description Remove every entry from the session's cart
// @Tags Cart
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Router /api/cart [delete]
func (h *CartHandler) ClearCartDoc() {}

// Checkout godoc
// @Summary Checkout
// @Description Checkout is not implemented; the endpoint always returns 501
// @Tags Cart
// @Produce json
// @Failure 501 {object} object{success=bool,error=string}
// @Router /api/cart/checkout [post]
func (h *CartHandler) CheckoutDoc() {}
