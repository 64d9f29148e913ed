package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeContract runs the behavior every Store implementation must satisfy.
func storeContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("PutGet", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "a.bin", []byte("alpha")))

		data, err := store.Get(ctx, "a.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte("alpha"), data)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "a.bin", []byte("beta")))

		data, err := store.Get(ctx, "a.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte("beta"), data)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing.bin")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snap/1.bin", []byte("1")))
		require.NoError(t, store.Put(ctx, "snap/2.bin", []byte("2")))

		names, err := store.List(ctx, "snap/")
		require.NoError(t, err)
		assert.Equal(t, []string{"snap/1.bin", "snap/2.bin"}, names)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "a.bin"))
		_, err := store.Get(ctx, "a.bin")
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting a missing blob is not an error.
		assert.NoError(t, store.Delete(ctx, "a.bin"))
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	storeContract(t, store)
}

func TestCachedStore(t *testing.T) {
	storeContract(t, NewCachedStore(NewMemoryStore()))

	t.Run("ServesFromCacheAfterFirstGet", func(t *testing.T) {
		ctx := context.Background()
		inner := NewMemoryStore()
		cached := NewCachedStore(inner)

		require.NoError(t, cached.Put(ctx, "s.bin", []byte("v1")))
		data, err := cached.Get(ctx, "s.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), data)

		// Mutate the inner store behind the cache's back; the cached
		// value continues to be served.
		require.NoError(t, inner.Put(ctx, "s.bin", []byte("v2")))
		data, err = cached.Get(ctx, "s.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), data)

		// A write through the wrapper invalidates.
		require.NoError(t, cached.Put(ctx, "s.bin", []byte("v3")))
		data, err = cached.Get(ctx, "s.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte("v3"), data)
	})
}
