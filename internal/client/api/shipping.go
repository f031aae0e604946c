package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nakhrali/storefront/pkg/api"
)

// TrackOrder fetches tracking information for an order.
func (c *Client) TrackOrder(ctx context.Context, accessToken, orderID string) (*api.TrackingResponse, error) {
	var resp api.TrackingResponse
	if err := c.doRequest(ctx, http.MethodGet, "/shipping/track/"+orderID, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("tracking request failed: %w", err)
	}
	return &resp, nil
}

// GenerateLabel asks the carrier integration to produce a shipping label.
func (c *Client) GenerateLabel(ctx context.Context, accessToken, orderID string) (*api.LabelResponse, error) {
	var resp api.LabelResponse
	if err := c.doRequest(ctx, http.MethodPost, "/shipping/label/"+orderID, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("label request failed: %w", err)
	}
	return &resp, nil
}

// ShippingRates quotes courier rates for a shipment.
func (c *Client) ShippingRates(ctx context.Context, accessToken string, req api.RateRequest) (*api.RateResponse, error) {
	var resp api.RateResponse
	if err := c.doRequest(ctx, http.MethodPost, "/shipping/rates", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	return &resp, nil
}

// CheckServiceability reports whether a destination postcode is deliverable.
func (c *Client) CheckServiceability(ctx context.Context, accessToken string, req api.ServiceabilityRequest) (*api.ServiceabilityResponse, error) {
	var resp api.ServiceabilityResponse
	if err := c.doRequest(ctx, http.MethodPost, "/shipping/serviceability", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("serviceability request failed: %w", err)
	}
	return &resp, nil
}
