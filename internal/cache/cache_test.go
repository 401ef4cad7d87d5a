package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triangle-lang/trianglec/internal/cache"
)

func TestStoreThenLookupRoundTrips(t *testing.T) {
	c, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer c.Close()

	key := cache.Key("let const x is 1 in x")
	object := []byte{0x00, 0x00, 0x00, 0x00}

	_, ok, err := c.Lookup(key)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Store(key, object))

	got, ok, err := c.Lookup(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, object, got)
}

func TestStoreOverwritesExistingEntry(t *testing.T) {
	c, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer c.Close()

	key := cache.Key("source")
	require.NoError(t, c.Store(key, []byte{1}))
	require.NoError(t, c.Store(key, []byte{2}))

	got, ok, err := c.Lookup(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte{2}, got)
}

func TestKeyIsStableAndContentSensitive(t *testing.T) {
	require.Equal(t, cache.Key("a"), cache.Key("a"))
	require.NotEqual(t, cache.Key("a"), cache.Key("b"))
}
