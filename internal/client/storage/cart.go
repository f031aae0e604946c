package storage

import (
	"context"

	"github.com/nakhrali/storefront/internal/models"
)

// CartStorage persists the local mirror of the shopping cart. The mirror
// exists for guest sessions and as the offline copy of an authenticated
// cart; reconciliation with the server copy happens above this layer.
type CartStorage interface {
	// SaveCart replaces the persisted cart with the given lines.
	SaveCart(ctx context.Context, lines []models.CartLine) error

	// GetCart returns the persisted cart. An absent cart is an empty
	// slice, not an error.
	GetCart(ctx context.Context) ([]models.CartLine, error)
}
