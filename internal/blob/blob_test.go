package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Load("dining-room")
	require.NoError(t, err)
	assert.False(t, ok, "unsaved key should be absent")

	require.NoError(t, store.Save("dining-room", []byte(`{"name":"dining-room"}`)))

	data, ok, err := store.Load("dining-room")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"name":"dining-room"}`, string(data))

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"dining-room"}, keys)

	require.NoError(t, store.Delete("dining-room"))
	_, ok, err = store.Load("dining-room")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is not an error.
	assert.NoError(t, store.Delete("dining-room"))
}

func TestFileStoreKeyCannotEscapeDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("../evil", []byte("x")))

	keys, err := store.Keys()
	require.NoError(t, err)
	require.Len(t, keys, 1)

	data, ok, err := store.Load("../evil")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "x", string(data))
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	require.NoError(t, store.Save("a", []byte("1")))
	require.NoError(t, store.Save("b", []byte("2")))

	data, ok, err := store.Load("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", string(data))

	// The store keeps its own copy of the blob.
	orig := []byte("mutate-me")
	require.NoError(t, store.Save("c", orig))
	orig[0] = 'X'
	data, _, _ = store.Load("c")
	assert.Equal(t, "mutate-me", string(data))

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	require.NoError(t, store.Delete("b"))
	_, ok, _ = store.Load("b")
	assert.False(t, ok)
}
