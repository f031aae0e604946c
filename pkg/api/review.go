package api

import "time"

// ReviewAuthor identifies the customer who wrote a review.
type ReviewAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Review is a single product review.
type Review struct {
	CreatedAt        time.Time    `json:"created_at"`
	ID               string       `json:"id"`
	ProductID        string       `json:"product_id"`
	Title            string       `json:"title,omitempty"`
	Text             string       `json:"text"`
	Images           []string     `json:"images,omitempty"`
	Author           ReviewAuthor `json:"author"`
	Product          *Product     `json:"product,omitempty"`
	Rating           int          `json:"rating"`
	HelpfulCount     int          `json:"helpful_count"`
	VerifiedPurchase bool         `json:"verified_purchase"`
}

// RatingStats aggregates ratings for a product.
type RatingStats struct {
	RatingDistribution map[string]int `json:"rating_distribution"`
	AverageRating      float64        `json:"average_rating"`
	TotalReviews       int            `json:"total_reviews"`
}

// ProductReviewsResponse is returned by GET /reviews/product/:id.
type ProductReviewsResponse struct {
	Reviews     []Review    `json:"reviews"`
	RatingStats RatingStats `json:"rating_stats"`
	Pagination  Pagination  `json:"pagination"`
}

// UserReviewsResponse is returned by GET /reviews/user.
type UserReviewsResponse struct {
	Reviews    []Review   `json:"reviews"`
	Pagination Pagination `json:"pagination"`
}

// AddReviewRequest creates a review for a product.
type AddReviewRequest struct {
	ProductID string   `json:"product_id"`
	Title     string   `json:"title,omitempty"`
	Text      string   `json:"text"`
	Images    []string `json:"images,omitempty"`
	Rating    int      `json:"rating"`
}

// UpdateReviewRequest edits an existing review.
type UpdateReviewRequest struct {
	Title  string   `json:"title,omitempty"`
	Text   string   `json:"text"`
	Images []string `json:"images,omitempty"`
	Rating int      `json:"rating"`
}

// ReviewResponse wraps a single review.
type ReviewResponse struct {
	Review Review `json:"review"`
}

// HelpfulResponse carries the new helpful count after a vote.
type HelpfulResponse struct {
	HelpfulCount int `json:"helpful_count"`
}
