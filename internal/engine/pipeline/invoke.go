package pipeline

import (
	"context"
	"errors"
	iofs "io/fs"
	"path/filepath"

	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// KraftArgs returns the arguments of the kraft invocation for cfg.
func KraftArgs(cfg domain.BuildConfig) []string {
	return []string{
		"build",
		"--arch", cfg.Arch().String(),
		"--plat", cfg.Platform().String(),
		"--fast",
		cfg.OutDir(),
	}
}

// BuildKernel stages the project files in the output directory and runs kraft on it.
//
// Kraftfile is required. Makefile.uk is copied only when present.
func (p *Pipeline) BuildKernel(ctx context.Context, cfg domain.BuildConfig, kraft string) error {
	if err := p.copyToOut(cfg, domain.ManifestFile, true); err != nil {
		return err
	}
	if err := p.copyToOut(cfg, domain.MakefileUK, false); err != nil {
		return err
	}

	cmd := domain.Command{Name: kraft, Args: KraftArgs(cfg)}
	p.logger.Info("building unikraft for " + cfg.Target())

	result, err := p.executor.Run(ctx, cmd)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrCommandFailed) {
		return zerr.With(zerr.Wrap(err, "failed to execute kraft"), "command", cmd.String())
	}

	failed := zerr.Wrap(domain.ErrKernelBuildFailed, "building "+cfg.Target())
	failed = zerr.With(failed, "exit_code", result.ExitCode)
	failed = zerr.With(failed, "stdout", string(result.Stdout))
	return zerr.With(failed, "stderr", string(result.Stderr))
}

func (p *Pipeline) copyToOut(cfg domain.BuildConfig, name string, required bool) error {
	src := filepath.Join(cfg.AppDir(), name)
	dst := filepath.Join(cfg.OutDir(), name)

	if err := p.fs.CopyFile(src, dst); err != nil {
		if !required && errors.Is(err, iofs.ErrNotExist) {
			p.logger.Debug(name + " not found, skipping")
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to copy "+name), "path", src)
	}

	return p.emitter.Emit(domain.RerunIfChanged(src))
}
