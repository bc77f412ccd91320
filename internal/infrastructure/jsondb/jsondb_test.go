package jsondb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type post struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func writeDoc(t *testing.T, store *Store, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(store.Dir(), name+".json"), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestNewStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestReadCollection(t *testing.T) {
	store := newTestStore(t)
	writeDoc(t, store, "posts", `[{"id":1,"title":"first"},{"id":2,"title":"second"}]`)

	items, err := ReadCollection[post](store, "posts")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, 2, items[1].ID)
}

func TestReadCollectionMissingDocument(t *testing.T) {
	store := newTestStore(t)

	_, err := ReadCollection[post](store, "posts")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "posts", loadErr.Collection)
}

func TestReadCollectionMalformedDocument(t *testing.T) {
	store := newTestStore(t)
	writeDoc(t, store, "posts", `{"not":"an array"`)

	_, err := ReadCollection[post](store, "posts")

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := []post{{ID: 1, Title: "hello"}, {ID: 2, Title: "world"}}
	require.NoError(t, WriteCollection(store, "posts", in))

	out, err := ReadCollection[post](store, "posts")
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// No temp files left behind
	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "posts.json", entries[0].Name())
}

func TestWriteRewritesWholeDocument(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, WriteCollection(store, "posts", []post{{ID: 1, Title: "a"}}))
	require.NoError(t, WriteCollection(store, "posts", []post{{ID: 2, Title: "b"}}))

	out, err := ReadCollection[post](store, "posts")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].ID)
}

func TestCollectionSnapshotLazyLoad(t *testing.T) {
	store := newTestStore(t)
	writeDoc(t, store, "posts", `[{"id":1,"title":"cached"}]`)

	coll := NewCollection[post](store, "posts")

	items, err := coll.Snapshot()
	require.NoError(t, err)
	require.Len(t, items, 1)

	// The snapshot survives the document changing underneath
	writeDoc(t, store, "posts", `[]`)
	items, err = coll.Snapshot()
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// Until invalidated
	coll.Invalidate()
	items, err = coll.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCollectionSnapshotReturnsCopy(t *testing.T) {
	store := newTestStore(t)
	writeDoc(t, store, "posts", `[{"id":1,"title":"original"}]`)

	coll := NewCollection[post](store, "posts")

	first, err := coll.Snapshot()
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := coll.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "original", second[0].Title)
}

func TestCollectionReplace(t *testing.T) {
	store := newTestStore(t)
	writeDoc(t, store, "posts", `[]`)

	coll := NewCollection[post](store, "posts")
	require.NoError(t, coll.Replace([]post{{ID: 7, Title: "new"}}))

	// Snapshot reflects the write
	items, err := coll.Snapshot()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].ID)

	// And so does the document on disk
	onDisk, err := ReadCollection[post](store, "posts")
	require.NoError(t, err)
	assert.Equal(t, items, onDisk)
}

func TestCollectionFailedWriteDropsSnapshot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not bind when running as root")
	}

	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	writeDoc(t, store, "posts", `[{"id":1,"title":"before"}]`)

	coll := NewCollection[post](store, "posts")
	_, err = coll.Snapshot()
	require.NoError(t, err)

	// Make the data dir unwritable so the temp file creation fails
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	err = coll.Replace([]post{{ID: 2, Title: "after"}})
	require.Error(t, err)

	// The snapshot was dropped; the next read reloads the old document
	require.NoError(t, os.Chmod(dir, 0o755))
	items, err := coll.Snapshot()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "before", items[0].Title)
}
