package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menurota/menurota/internal/adapters/outbound/store"
)

func TestFileStore_SaveAndLoad(t *testing.T) {
	s := store.New(t.TempDir())

	require.NoError(t, s.Save("default/dishes.json", []byte(`{"a":1}`)))

	data, err := s.Load("default/dishes.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), data)
}

func TestFileStore_LoadMissingIsNil(t *testing.T) {
	s := store.New(t.TempDir())

	data, err := s.Load("default/nothing.json")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileStore_SaveCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	s := store.New(dir)

	require.NoError(t, s.Save("alice/plans.json", []byte("[]")))

	_, err := os.Stat(filepath.Join(dir, "alice", "plans.json"))
	assert.NoError(t, err)
}

func TestFileStore_Delete(t *testing.T) {
	s := store.New(t.TempDir())
	require.NoError(t, s.Save("default/tmp.json", []byte("x")))

	require.NoError(t, s.Delete("default/tmp.json"))
	data, err := s.Load("default/tmp.json")
	require.NoError(t, err)
	assert.Nil(t, data)

	// Deleting again is a no-op.
	assert.NoError(t, s.Delete("default/tmp.json"))
}

func TestFileStore_RejectsEscapingKeys(t *testing.T) {
	s := store.New(t.TempDir())

	_, err := s.Load("../outside.json")
	assert.Error(t, err)

	assert.Error(t, s.Save("/etc/passwd", []byte("x")))
	assert.Error(t, s.Delete(".."))
}

func TestDefaultDir(t *testing.T) {
	assert.Contains(t, store.DefaultDir(), ".menurota")
}
