package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nakhrali/storefront/pkg/api"
)

// ProductReviews fetches one page of reviews for a product. The query
// carries paging and filter parameters (page, per_page, rating,
// verified_only, has_images).
func (c *Client) ProductReviews(ctx context.Context, productID string, query url.Values) (*api.ProductReviewsResponse, error) {
	path := "/reviews/product/" + productID
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp api.ProductReviewsResponse
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("product reviews request failed: %w", err)
	}
	return &resp, nil
}

// UserReviews fetches one page of the current user's reviews.
func (c *Client) UserReviews(ctx context.Context, accessToken string, query url.Values) (*api.UserReviewsResponse, error) {
	path := "/reviews/user"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp api.UserReviewsResponse
	if err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("user reviews request failed: %w", err)
	}
	return &resp, nil
}

// AddReview creates a review.
func (c *Client) AddReview(ctx context.Context, accessToken string, req api.AddReviewRequest) (*api.ReviewResponse, error) {
	var resp api.ReviewResponse
	if err := c.doRequest(ctx, http.MethodPost, "/reviews/add", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("add review request failed: %w", err)
	}
	return &resp, nil
}

// UpdateReview edits an existing review.
func (c *Client) UpdateReview(ctx context.Context, accessToken, reviewID string, req api.UpdateReviewRequest) (*api.ReviewResponse, error) {
	var resp api.ReviewResponse
	if err := c.doRequest(ctx, http.MethodPut, "/reviews/"+reviewID, accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("update review request failed: %w", err)
	}
	return &resp, nil
}

// DeleteReview removes a review.
func (c *Client) DeleteReview(ctx context.Context, accessToken, reviewID string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/reviews/"+reviewID, accessToken, nil, nil); err != nil {
		return fmt.Errorf("delete review request failed: %w", err)
	}
	return nil
}

// MarkReviewHelpful votes a review helpful. The token may be empty: the
// endpoint accepts anonymous votes.
func (c *Client) MarkReviewHelpful(ctx context.Context, accessToken, reviewID string) (*api.HelpfulResponse, error) {
	var resp api.HelpfulResponse
	if err := c.doRequest(ctx, http.MethodPost, "/reviews/"+reviewID+"/helpful", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("mark helpful request failed: %w", err)
	}
	return &resp, nil
}
