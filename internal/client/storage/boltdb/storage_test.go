package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "storefront_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_CreatesBuckets(t *testing.T) {
	store := createTestStorage(t)

	err := store.db.View(func(tx *bbolt.Tx) error {
		assert.NotNil(t, tx.Bucket(bucketAuth))
		assert.NotNil(t, tx.Bucket(bucketCart))
		assert.NotNil(t, tx.Bucket(bucketPrefs))
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	_, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "nested", "db"))
	assert.Error(t, err)
}

func TestStorage_CloseNil(t *testing.T) {
	s := &Storage{}
	assert.NoError(t, s.Close())
}
