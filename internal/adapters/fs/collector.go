package fs

import (
	"bufio"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/ukbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactFS = (*Artifacts)(nil)

// Artifacts implements ports.ArtifactFS on the local file system.
type Artifacts struct{}

// NewArtifacts creates a new Artifacts.
func NewArtifacts() *Artifacts {
	return &Artifacts{}
}

// CopyFile copies src to dst, keeping the permission bits of src.
func (a *Artifacts) CopyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // paths are derived from the build configuration
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // read-only handle

	info, err := in.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", src)
	}

	//nolint:gosec // paths are derived from the build configuration
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", dst)
	}

	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close destination file"), "path", dst)
	}
	return nil
}

// RemoveFile removes path, ignoring a missing file.
func (a *Artifacts) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove file"), "path", path)
	}
	return nil
}

// ObjectFiles lists the library objects directly inside dir, sorted by name.
// Only regular files named lib*.o are included; linker objects (*.ld.o) are not.
func (a *Artifacts) ObjectFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read build directory"), "path", dir)
	}

	objects := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !domain.IsLibraryObject(entry.Name()) {
			continue
		}
		objects = append(objects, filepath.Join(dir, entry.Name()))
	}
	return objects, nil
}

// LinkerFragments returns <sub>/<name> for every subdirectory of libDir holding
// such a file, ordered by subdirectory name.
func (a *Artifacts) LinkerFragments(libDir, name string) ([]string, error) {
	entries, err := os.ReadDir(libDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read library directory"), "path", libDir)
	}

	var fragments []string
	for _, entry := range entries {
		sub := filepath.Join(libDir, entry.Name())
		if info, err := os.Stat(sub); err != nil || !info.IsDir() {
			continue
		}

		candidate := filepath.Join(sub, name)
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat linker script fragment"), "path", candidate)
		}
		fragments = append(fragments, candidate)
	}
	return fragments, nil
}

// Concat writes the contents of srcs, in order, to dst.
// An empty srcs list produces an empty dst.
func (a *Artifacts) Concat(dst string, srcs []string) error {
	out, err := os.Create(dst) //nolint:gosec // paths are derived from the build configuration
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", dst)
	}

	w := bufio.NewWriter(out)
	for _, src := range srcs {
		if err := appendFile(w, src); err != nil {
			_ = out.Close()
			return err
		}
	}

	if err := w.Flush(); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", dst)
	}
	return nil
}

func appendFile(w io.Writer, src string) error {
	in, err := os.Open(src) //nolint:gosec // paths come from LinkerFragments
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // read-only handle

	if _, err := io.Copy(w, in); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read file"), "path", src)
	}
	return nil
}
