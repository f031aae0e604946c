// Package wishlist implements the saved-products state service.
// Authentication is mandatory for every operation; unauthenticated calls
// are no-ops returning a declined result. Mutations reload the full list
// from the server instead of patching locally, the opposite policy from
// the cart service.
package wishlist

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nakhrali/storefront/internal/notify"
	"github.com/nakhrali/storefront/pkg/api"
)

// APIClient is the subset of the HTTP client the wishlist service needs.
type APIClient interface {
	GetWishlist(ctx context.Context, accessToken string) (*api.WishlistResponse, error)
	AddWishlistItem(ctx context.Context, accessToken string, req api.AddWishlistItemRequest) error
	RemoveWishlistItem(ctx context.Context, accessToken, itemID string) error
	ClearWishlist(ctx context.Context, accessToken string) error
	MoveWishlistItemToCart(ctx context.Context, accessToken, itemID string, req api.MoveToCartRequest) error
}

// Credentials reports the authentication state the service gates on.
type Credentials interface {
	IsAuthenticated() bool
	AccessToken() string
}

// Service holds the wishlist entries of the authenticated user.
type Service struct {
	apiClient APIClient
	creds     Credentials
	notifier  notify.Notifier
	logger    *slog.Logger

	mu      sync.RWMutex
	items   []api.WishlistItem
	lastErr error
}

// NewService creates a wishlist service. A nil logger falls back to
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

// Load fetches the wishlist from the server. For a guest session it is a
// declined no-op.
func (s *Service) Load(ctx context.Context) bool {
	if !s.creds.IsAuthenticated() {
		return false
	}
	return s.reload(ctx)
}

// Add saves a product (optionally a specific variant) to the wishlist and
// reloads the list. Returns false for guest sessions and remote failures.
func (s *Service) Add(ctx context.Context, productID, variantID string) bool {
	if !s.creds.IsAuthenticated() {
		s.declineGuest()
		return false
	}

	req := api.AddWishlistItemRequest{ProductID: productID, VariantID: variantID}
	if err := s.apiClient.AddWishlistItem(ctx, s.creds.AccessToken(), req); err != nil {
		s.reportError("Failed to add to wishlist", err)
		return false
	}

	ok := s.reload(ctx)
	if ok && s.notifier != nil {
		s.notifier.Success("Added to wishlist")
	}
	return ok
}

// Remove deletes the entry with the given server ID and reloads the list.
func (s *Service) Remove(ctx context.Context, itemID string) bool {
	if !s.creds.IsAuthenticated() {
		s.declineGuest()
		return false
	}

	if err := s.apiClient.RemoveWishlistItem(ctx, s.creds.AccessToken(), itemID); err != nil {
		s.reportError("Failed to remove from wishlist", err)
		return false
	}

	ok := s.reload(ctx)
	if ok && s.notifier != nil {
		s.notifier.Info("Removed from wishlist")
	}
	return ok
}

// Toggle removes the entry matching productID when present, else adds the
// product. Calling it twice in a row restores the starting state.
func (s *Service) Toggle(ctx context.Context, productID, variantID string) bool {
	if !s.creds.IsAuthenticated() {
		s.declineGuest()
		return false
	}

	if entry, ok := s.Entry(productID); ok {
		return s.Remove(ctx, entry.ID)
	}
	return s.Add(ctx, productID, variantID)
}

// Clear deletes every entry.
func (s *Service) Clear(ctx context.Context) bool {
	if !s.creds.IsAuthenticated() {
		s.declineGuest()
		return false
	}

	if err := s.apiClient.ClearWishlist(ctx, s.creds.AccessToken()); err != nil {
		s.reportError("Failed to clear wishlist", err)
		return false
	}
	return s.reload(ctx)
}

// MoveToCart moves the entry with the given server ID into the cart and
// reloads the list. The cart change happens server-side; callers refresh
// the cart service separately.
func (s *Service) MoveToCart(ctx context.Context, itemID string, quantity int) bool {
	if !s.creds.IsAuthenticated() {
		s.declineGuest()
		return false
	}
	if quantity < 1 {
		quantity = 1
	}

	req := api.MoveToCartRequest{Quantity: quantity}
	if err := s.apiClient.MoveWishlistItemToCart(ctx, s.creds.AccessToken(), itemID, req); err != nil {
		s.reportError("Failed to move item to cart", err)
		return false
	}

	ok := s.reload(ctx)
	if ok && s.notifier != nil {
		s.notifier.Success("Moved to cart")
	}
	return ok
}

// Items returns a copy of the current entries.
func (s *Service) Items() []api.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]api.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of entries.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// TotalValue returns the sum of the saved products' prices.
func (s *Service) TotalValue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0.0
	for _, item := range s.items {
		total += item.Product.Price
	}
	return total
}

// Contains reports whether a product is wishlisted.
func (s *Service) Contains(productID string) bool {
	_, ok := s.Entry(productID)
	return ok
}

// Entry returns the wishlist entry for a product, if present.
func (s *Service) Entry(productID string) (api.WishlistItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return api.WishlistItem{}, false
}

// Err returns the error recorded by the last failed remote call, or nil.
func (s *Service) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// reload replaces the in-memory entries with the server's current list.
func (s *Service) reload(ctx context.Context) bool {
	resp, err := s.apiClient.GetWishlist(ctx, s.creds.AccessToken())
	if err != nil {
		s.reportError("Failed to load wishlist", err)
		return false
	}

	s.mu.Lock()
	s.items = resp.Items
	s.lastErr = nil
	s.mu.Unlock()
	return true
}

func (s *Service) declineGuest() {
	if s.notifier != nil {
		s.notifier.Info("Sign in to use your wishlist")
	}
}

func (s *Service) reportError(msg string, err error) {
	s.logger.Warn("wishlist operation failed", "error", err)
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	if s.notifier != nil {
		s.notifier.Error(msg)
	}
}
