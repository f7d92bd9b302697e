// Package app implements the application layer for ukbuild.
package app

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/ukbuild/internal/core/ports"
	"go.trai.ch/ukbuild/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// NoPlatformWarning is emitted when no platform feature is selected.
const NoPlatformWarning = "No platform has been selected. Not building Unikraft."

// RunOptions holds command line overrides. Empty fields and nil flags keep the
// value from the environment or the configuration file.
type RunOptions struct {
	OutDir string
	AppDir string
	Arch   string
	KVM    *bool
	Linuxu *bool
	Format string
	Kraft  string
	Ar     string
}

func (o RunOptions) apply(s domain.Settings) (domain.Settings, error) {
	if o.OutDir != "" {
		s.OutDir = o.OutDir
	}
	if o.Arch != "" {
		s.TargetArch = o.Arch
	}
	if o.KVM != nil {
		s.KVM = *o.KVM
	}
	if o.Linuxu != nil {
		s.Linuxu = *o.Linuxu
	}
	if o.Kraft != "" {
		s.Tools.Kraft = o.Kraft
	}
	if o.Ar != "" {
		s.Tools.Archiver = o.Ar
	}
	if o.Format != "" {
		format, err := domain.ParseDirectiveFormat(o.Format)
		if err != nil {
			return domain.Settings{}, err
		}
		s.Format = format
	}
	return s, nil
}

// App represents the main application logic.
type App struct {
	locator   ports.WorkspaceLocator
	loader    ports.ConfigLoader
	pipeline  *pipeline.Pipeline
	emitter   ports.DirectiveEmitter
	hasher    ports.Hasher
	stores    ports.BuildInfoStoreOpener
	watcher   ports.FileWatcher
	telemetry ports.Telemetry
	logger    ports.Logger
	now       func() time.Time
}

// New creates a new App instance.
func New(
	locator ports.WorkspaceLocator,
	loader ports.ConfigLoader,
	p *pipeline.Pipeline,
	emitter ports.DirectiveEmitter,
	hasher ports.Hasher,
	stores ports.BuildInfoStoreOpener,
	watcher ports.FileWatcher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		locator:   locator,
		loader:    loader,
		pipeline:  p,
		emitter:   emitter,
		hasher:    hasher,
		stores:    stores,
		watcher:   watcher,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the clock used to timestamp build records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Close flushes the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// Run builds Unikraft once for the configured target.
//
// Selecting no platform is not an error: a warning directive is emitted and
// nothing is built.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	appDir, err := a.appDir(opts)
	if err != nil {
		return err
	}

	settings, err := a.loader.Load(appDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	settings, err = opts.apply(settings)
	if err != nil {
		return err
	}

	a.emitter.SetFormat(settings.Format)
	if err := a.emitter.Emit(domain.RerunIfEnvChanged(a.locator.OverrideEnv())); err != nil {
		return err
	}

	arch, err := domain.ResolveArchitecture(settings.TargetArch)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve architecture")
	}

	choice, err := domain.ResolvePlatform(settings.KVM, settings.Linuxu)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve platform")
	}
	if choice.Skip() {
		a.logger.Warn(domain.ErrNoPlatform.Error())
		return a.emitter.Emit(domain.Warning(NoPlatformWarning))
	}

	cfg, err := domain.NewBuildConfig(settings.OutDir, appDir, arch, choice.Platform())
	if err != nil {
		return err
	}

	artifacts, err := a.pipeline.Run(ctx, cfg, settings.Tools)
	if err != nil {
		return zerr.Wrap(err, "unikraft build failed")
	}

	if err := a.record(cfg, artifacts, settings.StateFile); err != nil {
		a.logger.Warn("failed to record build: " + err.Error())
	}

	a.logger.Info("unikraft built for " + cfg.Target())
	return nil
}

// Watch runs a build and then rebuilds whenever one of the application's
// build inputs changes. Failed builds are logged and do not stop watching.
// It returns once ctx is done.
func (a *App) Watch(ctx context.Context, opts RunOptions) error {
	appDir, err := a.appDir(opts)
	if err != nil {
		return err
	}
	opts.AppDir = appDir

	if err := a.Run(ctx, opts); err != nil {
		a.logger.Error(err)
	}

	files := []string{
		filepath.Join(appDir, domain.ManifestFile),
		filepath.Join(appDir, domain.MakefileUK),
		filepath.Join(appDir, domain.ConfigFileName),
	}
	changes, err := a.watcher.Watch(ctx, files)
	if err != nil {
		return zerr.Wrap(err, "failed to watch build inputs")
	}
	a.logger.Info("watching " + appDir + " for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed, ok := <-changes:
			if !ok {
				return nil
			}
			a.logger.Info("changed: " + strings.Join(changed, ", "))
			if err := a.Run(ctx, opts); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

func (a *App) appDir(opts RunOptions) (string, error) {
	if opts.AppDir != "" {
		return opts.AppDir, nil
	}
	dir, err := a.locator.Locate()
	if err != nil {
		return "", zerr.Wrap(err, "failed to locate application directory")
	}
	return dir, nil
}

func (a *App) record(cfg domain.BuildConfig, artifacts domain.Artifacts, stateFile string) error {
	archiveHash, err := a.hasher.ComputeFileHash(artifacts.Archive)
	if err != nil {
		return err
	}
	scriptHash, err := a.hasher.ComputeFileHash(artifacts.MergedLinkerScript)
	if err != nil {
		return err
	}

	store, err := a.stores.Open(filepath.Join(cfg.OutDir(), stateFile))
	if err != nil {
		return err
	}

	prev, err := store.Get(cfg.Target())
	if err != nil {
		return err
	}
	if prev != nil && prev.ArchiveHash == archiveHash {
		a.logger.Debug("archive unchanged since " + prev.Timestamp.Format(time.RFC3339))
	}

	return store.Put(domain.BuildInfo{
		Target:           cfg.Target(),
		Arch:             cfg.Arch().String(),
		Platform:         cfg.Platform().String(),
		Objects:          artifacts.Objects,
		ArchiveHash:      archiveHash,
		LinkerScriptHash: scriptHash,
		Timestamp:        a.now().UTC(),
	})
}
