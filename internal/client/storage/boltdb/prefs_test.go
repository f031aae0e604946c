package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakhrali/storefront/internal/client/storage"
)

func TestStorage_ThemeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// No stored preference means follow-the-OS mode.
	_, err := store.GetTheme(ctx)
	assert.ErrorIs(t, err, storage.ErrThemeNotSet)

	require.NoError(t, store.SaveTheme(ctx, "dark"))

	theme, err := store.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)

	require.NoError(t, store.DeleteTheme(ctx))

	_, err = store.GetTheme(ctx)
	assert.ErrorIs(t, err, storage.ErrThemeNotSet)
}

func TestStorage_DeleteTheme_Absent(t *testing.T) {
	store := createTestStorage(t)
	assert.NoError(t, store.DeleteTheme(context.Background()))
}

func TestStorage_RecentSearchesRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	searches, err := store.GetRecentSearches(ctx)
	require.NoError(t, err)
	assert.Empty(t, searches)

	saved := []string{"emerald ring", "gold bangle", "pearl necklace"}
	require.NoError(t, store.SaveRecentSearches(ctx, saved))

	got, err := store.GetRecentSearches(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	// Replacement is wholesale.
	require.NoError(t, store.SaveRecentSearches(ctx, []string{"ruby pendant"}))

	got, err = store.GetRecentSearches(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ruby pendant"}, got)
}
