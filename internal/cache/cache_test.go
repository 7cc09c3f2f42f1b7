package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/docforge/pkg/doc"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_PutGet(t *testing.T) {
	store := openStore(t)

	records := []doc.EntityRecord{
		{Name: "Widget", Kind: doc.KindClass, Category: "UI", File: "a.go"},
	}
	require.NoError(t, store.Put("a.go", "hash1", records))

	got, hit, err := store.Get("a.go", "hash1")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, records, got)
}

func TestStore_MissOnUnknownPath(t *testing.T) {
	store := openStore(t)

	_, hit, err := store.Get("never-stored.go", "hash")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestStore_MissOnHashMismatch(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Put("a.go", "old-hash", nil))

	_, hit, err := store.Get("a.go", "new-hash")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestStore_PutReplaces(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Put("a.go", "h1", []doc.EntityRecord{{Name: "Old", Kind: doc.KindClass}}))
	require.NoError(t, store.Put("a.go", "h2", []doc.EntityRecord{{Name: "New", Kind: doc.KindClass}}))

	_, hit, err := store.Get("a.go", "h1")
	require.NoError(t, err)
	assert.False(t, hit)

	got, hit, err := store.Get("a.go", "h2")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "New", got[0].Name)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Put("a.go", "h", []doc.EntityRecord{{Name: "Kept", Kind: doc.KindEnum}}))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	got, hit, err := store.Get("a.go", "h")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "Kept", got[0].Name)
}

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	h1, err := HashFile(path)
	require.NoError(t, err)
	assert.Len(t, h1, 64)

	h2, err := HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	require.NoError(t, os.WriteFile(path, []byte("changed"), 0644))
	h3, err := HashFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestHashFile_Missing(t *testing.T) {
	_, err := HashFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
