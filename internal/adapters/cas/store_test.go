package cas_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ukbuild/internal/adapters/cas"
	"go.trai.ch/ukbuild/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "ukbuild_state.json")

	store, err := cas.NewStore(storePath)
	require.NoError(t, err)

	info := domain.BuildInfo{
		Target:      "x86_64-kvm",
		Arch:        "x86_64",
		Platform:    "kvm",
		Objects:     []string{"libkvmplat.o", "libukboot.o"},
		ArchiveHash: "0123456789abcdef",
		Timestamp:   time.Now(),
	}
	require.NoError(t, store.Put(info))

	got, err := store.Get("x86_64-kvm")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info.Target, got.Target)
	assert.Equal(t, info.Objects, got.Objects)
}

func TestStore_GetMissing(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "ukbuild_state.json"))
	require.NoError(t, err)

	got, err := store.Get("x86_64-linuxu")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "ukbuild_state.json")

	store1, err := cas.NewStore(storePath)
	require.NoError(t, err)
	require.NoError(t, store1.Put(domain.BuildInfo{Target: "x86_64-kvm", ArchiveHash: "aaa"}))
	require.NoError(t, store1.Put(domain.BuildInfo{Target: "x86_64-linuxu", ArchiveHash: "bbb"}))

	store2, err := cas.NewOpener().Open(storePath)
	require.NoError(t, err)

	got, err := store2.Get("x86_64-kvm")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "aaa", got.ArchiveHash)

	got, err = store2.Get("x86_64-linuxu")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "bbb", got.ArchiveHash)
}

func TestStore_OmitZero(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "ukbuild_state.json")

	store, err := cas.NewStore(storePath)
	require.NoError(t, err)
	require.NoError(t, store.Put(domain.BuildInfo{Target: "x86_64-kvm"}))

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(storePath)
	require.NoError(t, err)

	jsonStr := string(content)
	assert.False(t, strings.Contains(jsonStr, "archive_hash"), "zero hash should be omitted")
	assert.False(t, strings.Contains(jsonStr, "timestamp"), "zero timestamp should be omitted")
	assert.True(t, strings.Contains(jsonStr, `"target": "x86_64-kvm"`))
}

func TestOpener_CorruptFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "ukbuild_state.json")
	require.NoError(t, os.WriteFile(storePath, []byte("{not json"), 0o600))

	_, err := cas.NewOpener().Open(storePath)
	require.Error(t, err)
}
