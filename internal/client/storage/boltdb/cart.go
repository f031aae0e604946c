package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/nakhrali/storefront/internal/models"
)

var cartKey = []byte("lines")

// SaveCart replaces the persisted cart mirror with the given lines.
func (s *Storage) SaveCart(ctx context.Context, lines []models.CartLine) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}

		data, err := json.Marshal(lines)
		if err != nil {
			return fmt.Errorf("failed to marshal cart: %w", err)
		}

		if err := bucket.Put(cartKey, data); err != nil {
			return fmt.Errorf("failed to save cart: %w", err)
		}

		return nil
	})
}

// GetCart returns the persisted cart mirror. A missing record is an empty
// cart.
func (s *Storage) GetCart(ctx context.Context) ([]models.CartLine, error) {
	var lines []models.CartLine

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}

		data := bucket.Get(cartKey)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &lines); err != nil {
			return fmt.Errorf("failed to unmarshal cart: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if lines == nil {
		lines = []models.CartLine{}
	}

	return lines, nil
}
