package api

// CartProduct is the product snapshot embedded in a cart line.
type CartProduct struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MainImage string `json:"main_image"`
	Slug      string `json:"slug"`
}

// CartVariant is the optional variant snapshot embedded in a cart line.
type CartVariant struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

// CartItem is one line of a cart as stored on the server.
type CartItem struct {
	Product  CartProduct  `json:"product"`
	Variant  *CartVariant `json:"variant,omitempty"`
	Quantity int          `json:"quantity"`
	Price    float64      `json:"price"`
}

// CartTotals summarizes a cart.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// CartResponse is returned by GET /cart and cart mutations.
type CartResponse struct {
	Items  []CartItem `json:"items"`
	Totals CartTotals `json:"totals"`
}

// AddCartItemRequest adds a product (optionally a specific variant) to the
// server-side cart.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest sets the quantity of an existing line.
type UpdateCartItemRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

// RemoveCartItemRequest removes a line.
type RemoveCartItemRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
}

// SyncCartRequest pushes a full guest cart to the server after login.
type SyncCartRequest struct {
	Items []CartItem `json:"items"`
}
