// Package cas implements the build record store kept in the output directory.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/ukbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.BuildInfoStore       = (*Store)(nil)
	_ ports.BuildInfoStoreOpener = (*Opener)(nil)
)

// Store implements ports.BuildInfoStore using a flat JSON file keyed by target.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.BuildInfo
}

// NewStore creates a new BuildInfoStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read build info store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal build info store")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build info store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for build info store"), "path", dir)
	}

	// Readers see either the old or the new file, never a partial one.
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary build info store")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write build info store")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write build info store")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace build info store"), "path", s.path)
	}

	return nil
}

// Get retrieves the build info recorded for a target.
func (s *Store) Get(target string) (*domain.BuildInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[target]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the build info.
func (s *Store) Put(info domain.BuildInfo) error {
	// Update cache first
	s.mu.Lock()
	s.cache[info.Target] = info
	s.mu.Unlock()

	// Then save to disk
	return s.save()
}

// Opener implements ports.BuildInfoStoreOpener.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open loads the store at path, creating it on first Put.
func (o *Opener) Open(path string) (ports.BuildInfoStore, error) {
	store, err := NewStore(path)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return store, nil
}
