package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nakhrali/storefront/pkg/api"
)

// GetWishlist fetches the full wishlist of the authenticated user.
func (c *Client) GetWishlist(ctx context.Context, accessToken string) (*api.WishlistResponse, error) {
	var resp api.WishlistResponse
	if err := c.doRequest(ctx, http.MethodGet, "/wishlist", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("get wishlist request failed: %w", err)
	}
	return &resp, nil
}

// AddWishlistItem saves a product to the wishlist.
func (c *Client) AddWishlistItem(ctx context.Context, accessToken string, req api.AddWishlistItemRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/wishlist/add", accessToken, req, nil); err != nil {
		return fmt.Errorf("add wishlist item request failed: %w", err)
	}
	return nil
}

// RemoveWishlistItem deletes the wishlist entry with the given server ID.
func (c *Client) RemoveWishlistItem(ctx context.Context, accessToken, itemID string) error {
	path := "/wishlist/remove/" + itemID
	if err := c.doRequest(ctx, http.MethodDelete, path, accessToken, nil, nil); err != nil {
		return fmt.Errorf("remove wishlist item request failed: %w", err)
	}
	return nil
}

// ClearWishlist deletes every wishlist entry.
func (c *Client) ClearWishlist(ctx context.Context, accessToken string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/wishlist/clear", accessToken, nil, nil); err != nil {
		return fmt.Errorf("clear wishlist request failed: %w", err)
	}
	return nil
}

// MoveWishlistItemToCart moves an entry into the cart server-side.
func (c *Client) MoveWishlistItemToCart(ctx context.Context, accessToken, itemID string, req api.MoveToCartRequest) error {
	path := "/wishlist/move-to-cart/" + itemID
	if err := c.doRequest(ctx, http.MethodPost, path, accessToken, req, nil); err != nil {
		return fmt.Errorf("move to cart request failed: %w", err)
	}
	return nil
}
