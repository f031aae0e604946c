package api

// WishlistItem is one saved product. The entry ID is the server's identifier
// for removal and move-to-cart operations.
type WishlistItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	VariantID string  `json:"product_variant_id,omitempty"`
	Product   Product `json:"product"`
}

// WishlistResponse is returned by GET /wishlist.
type WishlistResponse struct {
	Items []WishlistItem `json:"items"`
}

// AddWishlistItemRequest saves a product (optionally a specific variant).
type AddWishlistItemRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"product_variant_id,omitempty"`
}

// MoveToCartRequest moves a wishlist entry into the cart.
type MoveToCartRequest struct {
	Quantity int `json:"quantity"`
}
