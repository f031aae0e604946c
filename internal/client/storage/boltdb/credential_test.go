package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakhrali/storefront/internal/client/storage"
	"github.com/nakhrali/storefront/internal/models"
)

func TestStorage_SaveGetDeleteCredential(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	cred := &storage.Credential{
		AccessToken:  "access-token-123",
		RefreshToken: "refresh-token-456",
		User: models.UserProfile{
			ID:        "user-1",
			Email:     "priya@example.com",
			FirstName: "Priya",
			LastName:  "Sharma",
			Role:      models.RoleCustomer,
		},
	}

	// Guest session before anything is saved.
	_, err := store.GetCredential(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)

	require.NoError(t, store.SaveCredential(ctx, cred))

	got, err := store.GetCredential(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cred.AccessToken, got.AccessToken)
	assert.Equal(t, cred.RefreshToken, got.RefreshToken)
	assert.Equal(t, cred.User, got.User)

	require.NoError(t, store.DeleteCredential(ctx))

	_, err = store.GetCredential(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)
}

func TestStorage_SaveCredential_Overwrites(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveCredential(ctx, &storage.Credential{
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		User:         models.UserProfile{ID: "user-1"},
	}))
	require.NoError(t, store.SaveCredential(ctx, &storage.Credential{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		User:         models.UserProfile{ID: "user-1"},
	}))

	got, err := store.GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-access", got.AccessToken)
	assert.Equal(t, "new-refresh", got.RefreshToken)
}

func TestStorage_DeleteCredential_Absent(t *testing.T) {
	store := createTestStorage(t)

	// Deleting a credential that was never stored must not fail.
	assert.NoError(t, store.DeleteCredential(context.Background()))
}
