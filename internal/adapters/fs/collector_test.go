package fs_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ukbuild/internal/adapters/fs"
)

func touch(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestArtifacts_ObjectFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"libukboot.o",
		"libkvmplat.o",
		"libkvmplat.ld.o",
		"other.o",
		"libnolib.a",
		"libc.o.bak",
	} {
		touch(t, filepath.Join(dir, name), "obj")
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "libdir.o"), 0o750))

	objects, err := fs.NewArtifacts().ObjectFiles(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "libkvmplat.o"),
		filepath.Join(dir, "libukboot.o"),
	}, objects)
}

func TestArtifacts_ObjectFiles_MissingDir(t *testing.T) {
	objects, err := fs.NewArtifacts().ObjectFiles(filepath.Join(t.TempDir(), "build"))
	require.NoError(t, err)
	assert.NotNil(t, objects)
	assert.Empty(t, objects)
}

func TestArtifacts_ObjectFiles_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "build")
	touch(t, file, "")

	_, err := fs.NewArtifacts().ObjectFiles(file)
	require.Error(t, err)
}

func TestArtifacts_CopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Kraftfile")
	dst := filepath.Join(dir, "out", "Kraftfile")
	touch(t, src, "spec: v0.6\n")
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o750))
	touch(t, dst, "stale content that is longer than the new one\n")

	require.NoError(t, fs.NewArtifacts().CopyFile(src, dst))

	//nolint:gosec // Test file with controlled path
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "spec: v0.6\n", string(got))
}

func TestArtifacts_CopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := fs.NewArtifacts().CopyFile(filepath.Join(dir, "Makefile.uk"), filepath.Join(dir, "copy"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
}

func TestArtifacts_RemoveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "libunikraft.a")
	touch(t, path, "!<arch>\n")

	a := fs.NewArtifacts()
	require.NoError(t, a.RemoveFile(path))
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, iofs.ErrNotExist)

	require.NoError(t, a.RemoveFile(path), "removing a missing file is not an error")
}

func TestArtifacts_LinkerFragments(t *testing.T) {
	libDir := t.TempDir()
	touch(t, filepath.Join(libDir, "ukdebug", "extra.ld"), "A")
	touch(t, filepath.Join(libDir, "posix-process", "extra.ld"), "B")
	touch(t, filepath.Join(libDir, "ukboot", "Makefile.uk"), "no fragment")
	touch(t, filepath.Join(libDir, "extra.ld"), "top-level file is ignored")

	fragments, err := fs.NewArtifacts().LinkerFragments(libDir, "extra.ld")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(libDir, "posix-process", "extra.ld"),
		filepath.Join(libDir, "ukdebug", "extra.ld"),
	}, fragments)
}

func TestArtifacts_LinkerFragments_MissingLibDir(t *testing.T) {
	_, err := fs.NewArtifacts().LinkerFragments(filepath.Join(t.TempDir(), "lib"), "extra.ld")
	require.Error(t, err)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
}

func TestArtifacts_Concat(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.ld")
	b := filepath.Join(dir, "b.ld")
	touch(t, a, "SECTIONS { .a : {} }\n")
	touch(t, b, "SECTIONS { .b : {} }")
	dst := filepath.Join(dir, "merged.ld")

	require.NoError(t, fs.NewArtifacts().Concat(dst, []string{a, b}))

	//nolint:gosec // Test file with controlled path
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "SECTIONS { .a : {} }\nSECTIONS { .b : {} }", string(got))
}

func TestArtifacts_Concat_Empty(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "merged.ld")
	touch(t, dst, "previous")

	require.NoError(t, fs.NewArtifacts().Concat(dst, nil))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestArtifacts_Concat_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := fs.NewArtifacts().Concat(filepath.Join(dir, "merged.ld"), []string{filepath.Join(dir, "gone.ld")})
	require.Error(t, err)
}
