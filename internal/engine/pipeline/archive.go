package pipeline

import (
	"context"
	"errors"
	"strconv"

	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// ArchiveArgs returns the archiver arguments creating archive from objects.
func ArchiveArgs(archive string, objects []string) []string {
	args := make([]string, 0, len(objects)+2)
	args = append(args, "rcs", archive)
	return append(args, objects...)
}

// CreateStaticLibrary packs the kernel's library objects into libunikraft.a
// and emits the directives linking it as a whole archive.
//
// The archive is always recreated from scratch. It returns the archived objects.
func (p *Pipeline) CreateStaticLibrary(ctx context.Context, cfg domain.BuildConfig, ar string) ([]string, error) {
	objects, err := p.fs.ObjectFiles(cfg.BuildDir())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to collect object files")
	}
	p.logger.Debug("collected " + strconv.Itoa(len(objects)) + " object files")

	archive := cfg.ArchivePath()
	if err := p.fs.RemoveFile(archive); err != nil {
		return nil, zerr.Wrap(err, "failed to remove previous archive")
	}

	cmd := domain.Command{Name: ar, Args: ArchiveArgs(archive, objects)}
	result, err := p.executor.Run(ctx, cmd)
	if err != nil {
		if !errors.Is(err, domain.ErrCommandFailed) {
			return nil, zerr.With(zerr.Wrap(err, "failed to execute archiver"), "tool", ar)
		}
		failed := zerr.Wrap(domain.ErrArchiveFailed, "archiving "+cfg.Target())
		failed = zerr.With(failed, "exit_code", result.ExitCode)
		return nil, zerr.With(failed, "stderr", string(result.Stderr))
	}

	if err := p.emitter.Emit(domain.LinkSearch(cfg.OutDir())); err != nil {
		return nil, err
	}
	if err := p.emitter.Emit(domain.LinkWholeArchive(domain.LibraryName)); err != nil {
		return nil, err
	}

	return objects, nil
}
