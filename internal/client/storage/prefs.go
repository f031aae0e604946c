package storage

import "context"

// PrefsStorage persists small user preferences: the explicit theme choice
// and the recent-search history.
type PrefsStorage interface {
	// SaveTheme stores the explicit theme preference ("light" or "dark").
	SaveTheme(ctx context.Context, theme string) error

	// GetTheme returns the stored preference.
	// Returns ErrThemeNotSet when none is stored (follow the OS scheme).
	GetTheme(ctx context.Context) (string, error)

	// DeleteTheme removes the stored preference, returning the client to
	// follow-the-OS mode. Deleting an absent preference is not an error.
	DeleteTheme(ctx context.Context) error

	// SaveRecentSearches replaces the persisted recent-search list.
	SaveRecentSearches(ctx context.Context, searches []string) error

	// GetRecentSearches returns the persisted recent-search list,
	// most-recent-first. An absent list is an empty slice, not an error.
	GetRecentSearches(ctx context.Context) ([]string, error)
}
