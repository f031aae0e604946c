// Package review implements the product-review state service. Listings
// replace in-memory state wholesale on every fetch, and writes trigger a
// refetch of the affected listing instead of patching locally. The single
// exception is the helpful vote, which patches the one affected counter in
// place using the count the server returns.
package review

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"sync"

	"github.com/nakhrali/storefront/internal/notify"
	"github.com/nakhrali/storefront/internal/validation"
	"github.com/nakhrali/storefront/pkg/api"
)

// APIClient is the subset of the HTTP client the review service needs.
type APIClient interface {
	ProductReviews(ctx context.Context, productID string, query url.Values) (*api.ProductReviewsResponse, error)
	UserReviews(ctx context.Context, accessToken string, query url.Values) (*api.UserReviewsResponse, error)
	AddReview(ctx context.Context, accessToken string, req api.AddReviewRequest) (*api.ReviewResponse, error)
	UpdateReview(ctx context.Context, accessToken, reviewID string, req api.UpdateReviewRequest) (*api.ReviewResponse, error)
	DeleteReview(ctx context.Context, accessToken, reviewID string) error
	MarkReviewHelpful(ctx context.Context, accessToken, reviewID string) (*api.HelpfulResponse, error)
}

// Credentials reports the authentication state write operations gate on.
type Credentials interface {
	IsAuthenticated() bool
	AccessToken() string
}

// ListOptions carries paging and filter parameters for review listings.
type ListOptions struct {
	Page         int
	PerPage      int
	Rating       int  // 1..5, 0 = no filter
	VerifiedOnly bool
	HasImages    bool
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(o.PerPage))
	}
	if o.Rating > 0 {
		q.Set("rating", strconv.Itoa(o.Rating))
	}
	if o.VerifiedOnly {
		q.Set("verified_only", "true")
	}
	if o.HasImages {
		q.Set("has_images", "true")
	}
	return q
}

// Service holds the most recently fetched review listings.
type Service struct {
	apiClient APIClient
	creds     Credentials
	notifier  notify.Notifier
	logger    *slog.Logger

	mu sync.RWMutex
	// product listing state
	productID      string
	productOptions ListOptions
	reviews        []api.Review
	stats          api.RatingStats
	pagination     api.Pagination
	// user listing state
	userOptions    ListOptions
	userReviews    []api.Review
	userPagination api.Pagination

	lastErr error
}

// NewService creates a review service. A nil logger falls back to
// slog.Default().
func NewService(apiClient APIClient, creds Credentials, notifier notify.Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		apiClient: apiClient,
		creds:     creds,
		notifier:  notifier,
		logger:    logger,
	}
}

// LoadProductReviews fetches one page of a product's reviews and replaces
// the product listing wholesale.
func (s *Service) LoadProductReviews(ctx context.Context, productID string, opts ListOptions) error {
	resp, err := s.apiClient.ProductReviews(ctx, productID, opts.query())
	if err != nil {
		s.reportError("Failed to load reviews", err)
		return nil
	}

	s.mu.Lock()
	s.productID = productID
	s.productOptions = opts
	s.reviews = resp.Reviews
	s.stats = resp.RatingStats
	s.pagination = resp.Pagination
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// LoadUserReviews fetches one page of the current user's reviews.
func (s *Service) LoadUserReviews(ctx context.Context, opts ListOptions) error {
	if !s.creds.IsAuthenticated() {
		return nil
	}
	if err := s.loadUserReviews(ctx, opts); err != nil {
		s.reportError("Failed to load your reviews", err)
	}
	return nil
}

func (s *Service) loadUserReviews(ctx context.Context, opts ListOptions) error {
	resp, err := s.apiClient.UserReviews(ctx, s.creds.AccessToken(), opts.query())
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.userOptions = opts
	s.userReviews = resp.Reviews
	s.userPagination = resp.Pagination
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// Add creates a review and refetches the product listing it belongs to.
func (s *Service) Add(ctx context.Context, productID, title, text string, rating int, images []string) error {
	if err := validation.ValidateRating(rating); err != nil {
		return err
	}
	if err := validation.ValidateRequired("text", text); err != nil {
		return err
	}
	if !s.creds.IsAuthenticated() {
		s.declineGuest()
		return nil
	}

	req := api.AddReviewRequest{
		ProductID: productID,
		Title:     title,
		Text:      text,
		Images:    images,
		Rating:    rating,
	}
	if _, err := s.apiClient.AddReview(ctx, s.creds.AccessToken(), req); err != nil {
		s.reportError("Failed to submit review", err)
		return nil
	}

	if s.notifier != nil {
		s.notifier.Success("Review submitted")
	}
	return s.refetchProduct(ctx, productID)
}

// Update edits an existing review and refetches the affected listings.
func (s *Service) Update(ctx context.Context, reviewID, title, text string, rating int, images []string) error {
	if err := validation.ValidateRating(rating); err != nil {
		return err
	}
	if !s.creds.IsAuthenticated() {
		s.declineGuest()
		return nil
	}

	req := api.UpdateReviewRequest{
		Title:  title,
		Text:   text,
		Images: images,
		Rating: rating,
	}
	if _, err := s.apiClient.UpdateReview(ctx, s.creds.AccessToken(), reviewID, req); err != nil {
		s.reportError("Failed to update review", err)
		return nil
	}

	if s.notifier != nil {
		s.notifier.Success("Review updated")
	}
	return s.refetchCurrent(ctx)
}

// Delete removes a review and refetches the affected listings.
func (s *Service) Delete(ctx context.Context, reviewID string) error {
	if !s.creds.IsAuthenticated() {
		s.declineGuest()
		return nil
	}

	if err := s.apiClient.DeleteReview(ctx, s.creds.AccessToken(), reviewID); err != nil {
		s.reportError("Failed to delete review", err)
		return nil
	}

	if s.notifier != nil {
		s.notifier.Info("Review deleted")
	}
	return s.refetchCurrent(ctx)
}

// MarkHelpful votes a review helpful and patches the affected entry's
// counter in place with the count the server returns. No refetch. The patch
// is best-effort: a vote on a review absent from both held listings still
// succeeds server-side and is picked up by the next fetch.
func (s *Service) MarkHelpful(ctx context.Context, reviewID string) error {
	resp, err := s.apiClient.MarkReviewHelpful(ctx, s.creds.AccessToken(), reviewID)
	if err != nil {
		s.reportError("Failed to record vote", err)
		return nil
	}

	s.mu.Lock()
	for i := range s.reviews {
		if s.reviews[i].ID == reviewID {
			s.reviews[i].HelpfulCount = resp.HelpfulCount
			break
		}
	}
	for i := range s.userReviews {
		if s.userReviews[i].ID == reviewID {
			s.userReviews[i].HelpfulCount = resp.HelpfulCount
			break
		}
	}
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// CanReview reports whether the current user may write a new review for
// the product: signed in and without an existing review of their own. The
// user listing is fetched on demand when it has not been loaded yet; an
// eligibility check that cannot reach the listing answers false.
func (s *Service) CanReview(ctx context.Context, productID string) bool {
	if !s.creds.IsAuthenticated() {
		return false
	}

	s.mu.RLock()
	loaded := s.userReviews != nil
	s.mu.RUnlock()
	if !loaded {
		if err := s.loadUserReviews(ctx, ListOptions{}); err != nil {
			s.logger.Debug("review eligibility check failed", "error", err)
			return false
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.userReviews {
		if r.ProductID == productID {
			return false
		}
	}
	return true
}

// ProductListing returns a copy of the current product-review listing.
func (s *Service) ProductListing() ([]api.Review, api.RatingStats, api.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reviews := make([]api.Review, len(s.reviews))
	copy(reviews, s.reviews)
	return reviews, s.stats, s.pagination
}

// UserListing returns a copy of the current user-review listing.
func (s *Service) UserListing() ([]api.Review, api.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reviews := make([]api.Review, len(s.userReviews))
	copy(reviews, s.userReviews)
	return reviews, s.userPagination
}

// Err returns the error recorded by the last failed remote call, or nil.
func (s *Service) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// refetchProduct reloads the product listing for the given product using
// the last-used options.
func (s *Service) refetchProduct(ctx context.Context, productID string) error {
	s.mu.RLock()
	opts := s.productOptions
	s.mu.RUnlock()
	return s.LoadProductReviews(ctx, productID, opts)
}

// refetchCurrent reloads whichever listings are populated.
func (s *Service) refetchCurrent(ctx context.Context) error {
	s.mu.RLock()
	productID := s.productID
	productOpts := s.productOptions
	hasUser := s.userReviews != nil
	userOpts := s.userOptions
	s.mu.RUnlock()

	if productID != "" {
		if err := s.LoadProductReviews(ctx, productID, productOpts); err != nil {
			return err
		}
	}
	if hasUser {
		return s.LoadUserReviews(ctx, userOpts)
	}
	return nil
}

func (s *Service) declineGuest() {
	if s.notifier != nil {
		s.notifier.Info("Sign in to write a review")
	}
}

func (s *Service) reportError(msg string, err error) {
	s.logger.Warn("review operation failed", "error", err)
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	if s.notifier != nil {
		s.notifier.Error(msg)
	}
}
