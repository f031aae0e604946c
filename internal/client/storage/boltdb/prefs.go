package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/nakhrali/storefront/internal/client/storage"
)

const (
	keyTheme          = "theme"
	keyRecentSearches = "recent_searches"
)

// SaveTheme stores the explicit theme preference.
func (s *Storage) SaveTheme(ctx context.Context, theme string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return fmt.Errorf("prefs bucket not found")
		}

		if err := bucket.Put([]byte(keyTheme), []byte(theme)); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}

		return nil
	})
}

// GetTheme returns the stored theme preference. Absence means "follow the
// OS scheme" and is reported as storage.ErrThemeNotSet.
func (s *Storage) GetTheme(ctx context.Context) (string, error) {
	var theme string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return fmt.Errorf("prefs bucket not found")
		}

		data := bucket.Get([]byte(keyTheme))
		if data == nil {
			return storage.ErrThemeNotSet
		}

		theme = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return theme, nil
}

// DeleteTheme removes the stored preference (back to follow-the-OS mode).
func (s *Storage) DeleteTheme(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return fmt.Errorf("prefs bucket not found")
		}

		if err := bucket.Delete([]byte(keyTheme)); err != nil {
			return fmt.Errorf("failed to delete theme: %w", err)
		}

		return nil
	})
}

// SaveRecentSearches replaces the persisted recent-search list.
func (s *Storage) SaveRecentSearches(ctx context.Context, searches []string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return fmt.Errorf("prefs bucket not found")
		}

		data, err := json.Marshal(searches)
		if err != nil {
			return fmt.Errorf("failed to marshal recent searches: %w", err)
		}

		if err := bucket.Put([]byte(keyRecentSearches), data); err != nil {
			return fmt.Errorf("failed to save recent searches: %w", err)
		}

		return nil
	})
}

// GetRecentSearches returns the persisted recent-search list,
// most-recent-first. A missing record is an empty list.
func (s *Storage) GetRecentSearches(ctx context.Context) ([]string, error) {
	var searches []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return fmt.Errorf("prefs bucket not found")
		}

		data := bucket.Get([]byte(keyRecentSearches))
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &searches); err != nil {
			return fmt.Errorf("failed to unmarshal recent searches: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if searches == nil {
		searches = []string{}
	}

	return searches, nil
}
