// Package config loads build settings from the environment and ukbuild.yaml.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/ukbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the loader.
const (
	EnvOutDir     = "OUT_DIR"
	EnvTargetArch = "CARGO_CFG_TARGET_ARCH"
	EnvFeatureKVM = "CARGO_FEATURE_KVM"
	EnvFeatureLnx = "CARGO_FEATURE_LINUXU"
	EnvKraft      = "UKBUILD_KRAFT"
	EnvAr         = "UKBUILD_AR"
	EnvDirectives = "UKBUILD_DIRECTIVES"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
//
// Values are layered: defaults, then ukbuild.yaml, then the environment.
// Command line flags are applied by the caller on top of the result.
type Loader struct {
	logger   ports.Logger
	filename string
	lookup   func(string) (string, bool)
}

// NewLoader creates a Loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger:   logger,
		filename: Filename,
		lookup:   os.LookupEnv,
	}
}

// WithLookup replaces the environment lookup function.
func (l *Loader) WithLookup(fn func(string) (string, bool)) *Loader {
	l.lookup = fn
	return l
}

// Load reads the settings for the application in appDir.
func (l *Loader) Load(appDir string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if appDir != "" {
		if err := l.applyFile(&settings, filepath.Join(appDir, l.filename)); err != nil {
			return domain.Settings{}, err
		}
	}

	if err := l.applyEnv(&settings); err != nil {
		return domain.Settings{}, err
	}

	return settings, nil
}

func (l *Loader) applyFile(settings *domain.Settings, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is inside the application directory
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	l.logger.Debug("loaded " + path)

	if file.Tools.Kraft != "" {
		settings.Tools.Kraft = file.Tools.Kraft
	}
	if file.Tools.Ar != "" {
		settings.Tools.Archiver = file.Tools.Ar
	}
	if file.State != "" {
		settings.StateFile = file.State
	}
	if file.Directives != "" {
		format, err := domain.ParseDirectiveFormat(file.Directives)
		if err != nil {
			return zerr.With(err, "path", path)
		}
		settings.Format = format
	}
	return nil
}

func (l *Loader) applyEnv(settings *domain.Settings) error {
	if v, ok := l.lookup(EnvOutDir); ok {
		settings.OutDir = v
	}
	if v, ok := l.lookup(EnvTargetArch); ok {
		settings.TargetArch = v
	}

	// Feature variables select a platform by being present, whatever their value.
	_, settings.KVM = l.lookup(EnvFeatureKVM)
	_, settings.Linuxu = l.lookup(EnvFeatureLnx)

	if v, ok := l.lookup(EnvKraft); ok && v != "" {
		settings.Tools.Kraft = v
	}
	if v, ok := l.lookup(EnvAr); ok && v != "" {
		settings.Tools.Archiver = v
	}
	if v, ok := l.lookup(EnvDirectives); ok && v != "" {
		format, err := domain.ParseDirectiveFormat(v)
		if err != nil {
			return zerr.With(err, "env", EnvDirectives)
		}
		settings.Format = format
	}
	return nil
}
