package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nakhrali/storefront/pkg/api"
)

// GetCart fetches the server-side cart of the authenticated user.
func (c *Client) GetCart(ctx context.Context, accessToken string) (*api.CartResponse, error) {
	var resp api.CartResponse
	if err := c.doRequest(ctx, http.MethodGet, "/cart", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("get cart request failed: %w", err)
	}
	return &resp, nil
}

// AddCartItem adds a line to the server-side cart.
func (c *Client) AddCartItem(ctx context.Context, accessToken string, req api.AddCartItemRequest) (*api.CartResponse, error) {
	var resp api.CartResponse
	if err := c.doRequest(ctx, http.MethodPost, "/cart", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("add cart item request failed: %w", err)
	}
	return &resp, nil
}

// SyncCart pushes a full local cart to the server. Used once after login to
// merge a guest cart into a previously empty account cart.
func (c *Client) SyncCart(ctx context.Context, accessToken string, req api.SyncCartRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/cart/sync", accessToken, req, nil); err != nil {
		return fmt.Errorf("cart sync request failed: %w", err)
	}
	return nil
}

// UpdateCartItem sets the quantity of an existing line.
func (c *Client) UpdateCartItem(ctx context.Context, accessToken string, req api.UpdateCartItemRequest) (*api.CartResponse, error) {
	var resp api.CartResponse
	if err := c.doRequest(ctx, http.MethodPut, "/cart/update", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("update cart item request failed: %w", err)
	}
	return &resp, nil
}

// RemoveCartItem removes a line from the server-side cart.
func (c *Client) RemoveCartItem(ctx context.Context, accessToken string, req api.RemoveCartItemRequest) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/cart/remove", accessToken, req, nil); err != nil {
		return fmt.Errorf("remove cart item request failed: %w", err)
	}
	return nil
}

// ClearCart empties the server-side cart.
func (c *Client) ClearCart(ctx context.Context, accessToken string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/cart/clear", accessToken, nil, nil); err != nil {
		return fmt.Errorf("clear cart request failed: %w", err)
	}
	return nil
}
