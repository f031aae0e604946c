package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nakhrali/storefront/pkg/api"
)

// SearchProducts queries the catalog. The query carries search text, filter
// and paging parameters (search, category, price_min, price_max, material,
// occasion, style, sort_by, page, per_page).
func (c *Client) SearchProducts(ctx context.Context, query url.Values) (*api.ProductListResponse, error) {
	path := "/products"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp api.ProductListResponse
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("product search request failed: %w", err)
	}
	return &resp, nil
}
