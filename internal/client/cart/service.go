// Package cart implements the shopping-cart state service: an in-memory
// line sequence, a persisted local mirror, and a one-directional merge
// against the server-side cart of an authenticated session.
package cart

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nakhrali/storefront/internal/client/storage"
	"github.com/nakhrali/storefront/internal/models"
	"github.com/nakhrali/storefront/internal/notify"
	"github.com/nakhrali/storefront/internal/validation"
	"github.com/nakhrali/storefront/pkg/api"
)

// APIClient is the subset of the HTTP client the cart service needs.
type APIClient interface {
	GetCart(ctx context.Context, accessToken string) (*api.CartResponse, error)
	AddCartItem(ctx context.Context, accessToken string, req api.AddCartItemRequest) (*api.CartResponse, error)
	SyncCart(ctx context.Context, accessToken string, req api.SyncCartRequest) error
	UpdateCartItem(ctx context.Context, accessToken string, req api.UpdateCartItemRequest) (*api.CartResponse, error)
	RemoveCartItem(ctx context.Context, accessToken string, req api.RemoveCartItemRequest) error
	ClearCart(ctx context.Context, accessToken string) error
}

// Credentials reports the authentication state the cart service keys its
// remote calls on.
type Credentials interface {
	IsAuthenticated() bool
	AccessToken() string
}

// Service holds the cart lines and keeps the local mirror and, when
// authenticated, the server copy in step. Local state is optimistic and
// authoritative for the current session: remote failures are reported and
// recorded but never roll a local mutation back.
type Service struct {
	apiClient APIClient
	store     storage.CartStorage
	creds     Credentials
	notifier  notify.Notifier
	logger    *slog.Logger

	state serviceState
}

type serviceState struct {
	mu      sync.RWMutex
	lines   []models.CartLine
	lastErr error
}

// NewService creates a cart service. A nil logger falls back to
// slog.Default().
func NewService(apiClient APIClient, store storage.CartStorage, creds Credentials, notifier notify.Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		apiClient: apiClient,
		store:     store,
		creds:     creds,
		notifier:  notifier,
		logger:    logger,
	}
}

// Init loads the persisted mirror into memory unconditionally and, for an
// authenticated session, reconciles against the server cart.
func (s *Service) Init(ctx context.Context) error {
	lines, err := s.store.GetCart(ctx)
	if err != nil {
		return fmt.Errorf("failed to load persisted cart: %w", err)
	}

	s.state.mu.Lock()
	s.state.lines = lines
	s.state.lastErr = nil
	s.state.mu.Unlock()

	if s.creds.IsAuthenticated() {
		s.SyncWithServer(ctx)
	}
	return nil
}

// SyncWithServer runs the one-directional cart merge:
//
//  1. local non-empty, server empty  -> push local to the server
//  2. server non-empty               -> replace local wholesale with server
//  3. both empty                     -> no-op
//
// Local content survives only when the server cart started empty. There is
// no item-by-item union and no quantity summation across the two sources.
func (s *Service) SyncWithServer(ctx context.Context) {
	if !s.creds.IsAuthenticated() {
		return
	}
	token := s.creds.AccessToken()

	resp, err := s.apiClient.GetCart(ctx, token)
	if err != nil {
		s.reportError("Failed to sync cart", err)
		return
	}

	local := s.Lines()

	switch {
	case len(local) > 0 && len(resp.Items) == 0:
		req := api.SyncCartRequest{Items: linesToItems(local)}
		if err := s.apiClient.SyncCart(ctx, token, req); err != nil {
			s.reportError("Failed to sync cart", err)
			return
		}
		s.logger.Debug("pushed local cart to server", "lines", len(local))

	case len(resp.Items) > 0:
		lines := itemsToLines(resp.Items)
		if err := s.replaceLines(ctx, lines); err != nil {
			s.reportError("Failed to sync cart", err)
			return
		}
		s.logger.Debug("adopted server cart", "lines", len(lines))
	}

	s.state.mu.Lock()
	s.state.lastErr = nil
	s.state.mu.Unlock()
}

// Add puts quantity units of a product (optionally a specific variant) in
// the cart. A line already keyed by the same (product, variant) pair has
// its quantity incremented; otherwise a new line is appended.
func (s *Service) Add(ctx context.Context, product models.ProductRef, variant *models.VariantRef, quantity int, unitPrice float64) error {
	if err := validation.ValidateQuantity(quantity); err != nil {
		return err
	}

	s.state.mu.Lock()
	merged := false
	for i := range s.state.lines {
		if s.state.lines[i].Matches(product.ID, variantID(variant)) {
			s.state.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.state.lines = append(s.state.lines, models.CartLine{
			Product:   product,
			Variant:   variant,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
	}
	lines := cloneLines(s.state.lines)
	s.state.mu.Unlock()

	if err := s.store.SaveCart(ctx, lines); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	if s.creds.IsAuthenticated() {
		req := api.AddCartItemRequest{
			ProductID: product.ID,
			VariantID: variantID(variant),
			Quantity:  quantity,
		}
		if _, err := s.apiClient.AddCartItem(ctx, s.creds.AccessToken(), req); err != nil {
			s.reportError("Failed to add item to cart", err)
			return nil
		}
	}

	s.clearError()
	if s.notifier != nil {
		s.notifier.Success(fmt.Sprintf("%s added to cart", product.Name))
	}
	return nil
}

// UpdateQuantity sets the quantity of the line keyed by (productID,
// variantID). A quantity of zero or less removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, productID, variantID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, productID, variantID)
	}

	s.state.mu.Lock()
	found := false
	for i := range s.state.lines {
		if s.state.lines[i].Matches(productID, variantID) {
			s.state.lines[i].Quantity = quantity
			found = true
			break
		}
	}
	lines := cloneLines(s.state.lines)
	s.state.mu.Unlock()

	if !found {
		return nil
	}

	if err := s.store.SaveCart(ctx, lines); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	if s.creds.IsAuthenticated() {
		req := api.UpdateCartItemRequest{
			ProductID: productID,
			VariantID: variantID,
			Quantity:  quantity,
		}
		if _, err := s.apiClient.UpdateCartItem(ctx, s.creds.AccessToken(), req); err != nil {
			s.reportError("Failed to update cart", err)
			return nil
		}
	}

	s.clearError()
	return nil
}

// Remove drops the line keyed by (productID, variantID).
func (s *Service) Remove(ctx context.Context, productID, variantID string) error {
	s.state.mu.Lock()
	kept := s.state.lines[:0]
	removed := false
	for _, line := range s.state.lines {
		if line.Matches(productID, variantID) {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	s.state.lines = kept
	lines := cloneLines(s.state.lines)
	s.state.mu.Unlock()

	if !removed {
		return nil
	}

	if err := s.store.SaveCart(ctx, lines); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	if s.creds.IsAuthenticated() {
		req := api.RemoveCartItemRequest{ProductID: productID, VariantID: variantID}
		if err := s.apiClient.RemoveCartItem(ctx, s.creds.AccessToken(), req); err != nil {
			s.reportError("Failed to remove item from cart", err)
			return nil
		}
	}

	s.clearError()
	if s.notifier != nil {
		s.notifier.Info("Item removed from cart")
	}
	return nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.replaceLines(ctx, []models.CartLine{}); err != nil {
		return err
	}

	if s.creds.IsAuthenticated() {
		if err := s.apiClient.ClearCart(ctx, s.creds.AccessToken()); err != nil {
			s.reportError("Failed to clear cart", err)
			return nil
		}
	}

	s.clearError()
	return nil
}

// Lines returns a copy of the current cart lines.
func (s *Service) Lines() []models.CartLine {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	return cloneLines(s.state.lines)
}

// Count returns the total number of units across all lines.
func (s *Service) Count() int {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	count := 0
	for _, line := range s.state.lines {
		count += line.Quantity
	}
	return count
}

// Total returns the cart subtotal.
func (s *Service) Total() float64 {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	total := 0.0
	for _, line := range s.state.lines {
		total += line.Subtotal()
	}
	return total
}

// Err returns the error recorded by the last failed remote call, or nil.
func (s *Service) Err() error {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	return s.state.lastErr
}

// replaceLines swaps the in-memory cart wholesale and re-persists it.
func (s *Service) replaceLines(ctx context.Context, lines []models.CartLine) error {
	if err := s.store.SaveCart(ctx, lines); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	s.state.mu.Lock()
	s.state.lines = lines
	s.state.mu.Unlock()
	return nil
}

func (s *Service) reportError(msg string, err error) {
	s.logger.Warn("cart operation failed", "error", err)
	s.state.mu.Lock()
	s.state.lastErr = err
	s.state.mu.Unlock()
	if s.notifier != nil {
		s.notifier.Error(msg)
	}
}

func (s *Service) clearError() {
	s.state.mu.Lock()
	s.state.lastErr = nil
	s.state.mu.Unlock()
}

func variantID(v *models.VariantRef) string {
	if v == nil {
		return ""
	}
	return v.ID
}

func cloneLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

func linesToItems(lines []models.CartLine) []api.CartItem {
	items := make([]api.CartItem, 0, len(lines))
	for _, line := range lines {
		item := api.CartItem{
			Product: api.CartProduct{
				ID:        line.Product.ID,
				Name:      line.Product.Name,
				MainImage: line.Product.Image,
				Slug:      line.Product.Slug,
			},
			Quantity: line.Quantity,
			Price:    line.UnitPrice,
		}
		if line.Variant != nil {
			item.Variant = &api.CartVariant{ID: line.Variant.ID, Price: line.Variant.Price}
		}
		items = append(items, item)
	}
	return items
}

func itemsToLines(items []api.CartItem) []models.CartLine {
	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		line := models.CartLine{
			Product: models.ProductRef{
				ID:    item.Product.ID,
				Name:  item.Product.Name,
				Image: item.Product.MainImage,
				Slug:  item.Product.Slug,
			},
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		}
		if item.Variant != nil {
			line.Variant = &models.VariantRef{ID: item.Variant.ID, Price: item.Variant.Price}
		}
		lines = append(lines, line)
	}
	return lines
}
