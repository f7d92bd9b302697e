// Package workspace locates the application directory the kernel is built for.
package workspace

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/ukbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultOverrideEnv names the variable that pins the application directory.
	DefaultOverrideEnv = "APP_DIR"
	// DefaultInferDepth is the number of trailing elements stripped from the
	// executable path: <app>/target/<profile>/build/<pkg>/<exe>.
	DefaultInferDepth = 5
	// DefaultMarker is the file that must exist in an inferred application directory.
	DefaultMarker = "Cargo.toml"
)

var _ ports.WorkspaceLocator = (*Locator)(nil)

// Locator implements ports.WorkspaceLocator.
type Locator struct {
	Env        string
	InferDepth int
	Marker     string

	getenv     func(string) (string, bool)
	executable func() (string, error)
}

// NewLocator creates a Locator with the default settings.
func NewLocator() *Locator {
	return &Locator{
		Env:        DefaultOverrideEnv,
		InferDepth: DefaultInferDepth,
		Marker:     DefaultMarker,
		getenv:     os.LookupEnv,
		executable: os.Executable,
	}
}

// WithExecutable replaces the function reporting the running executable's path.
func (l *Locator) WithExecutable(fn func() (string, error)) *Locator {
	l.executable = fn
	return l
}

// OverrideEnv returns the name of the override variable.
func (l *Locator) OverrideEnv() string {
	return l.Env
}

// Locate returns the override value verbatim when present, even if empty.
// Otherwise it returns the directory InferDepth levels above the executable,
// provided it contains Marker.
func (l *Locator) Locate() (string, error) {
	if dir, ok := l.getenv(l.Env); ok {
		return dir, nil
	}

	exe, err := l.executable()
	if err != nil {
		cause := fmt.Errorf("%w: %w", domain.ErrWorkspaceNotFound, err)
		return "", zerr.With(zerr.Wrap(cause, "cannot resolve executable path"), "env", l.Env)
	}

	candidate := exe
	for range l.InferDepth {
		candidate = filepath.Dir(candidate)
	}

	marker := filepath.Join(candidate, l.Marker)
	if _, err := os.Stat(marker); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrWorkspaceNotFound, "marker file not found"), "path", marker)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to check for marker file"), "path", marker)
	}

	return candidate, nil
}
