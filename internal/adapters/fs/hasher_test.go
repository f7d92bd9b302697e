package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ukbuild/internal/adapters/fs"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	touch(t, a, "same content")
	touch(t, b, "same content")
	touch(t, c, "different content")

	h := fs.NewHasher()

	hashA, err := h.ComputeFileHash(a)
	require.NoError(t, err)
	hashB, err := h.ComputeFileHash(b)
	require.NoError(t, err)
	hashC, err := h.ComputeFileHash(c)
	require.NoError(t, err)

	assert.Len(t, hashA, 16)
	assert.Equal(t, hashA, hashB)
	assert.NotEqual(t, hashA, hashC)
}

func TestHasher_ComputeFileHash_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	touch(t, path, "")

	hash, err := fs.NewHasher().ComputeFileHash(path)
	require.NoError(t, err)
	// xxhash64 of the empty input with seed 0.
	assert.Equal(t, "ef46db3751d8e999", hash)
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
