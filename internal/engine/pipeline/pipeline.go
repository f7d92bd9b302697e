// Package pipeline builds the Unikraft kernel and turns its output into link inputs.
package pipeline

import (
	"context"

	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/ukbuild/internal/core/ports"
)

// Stage names as recorded by telemetry.
const (
	StageKernel        = "kraft build"
	StageArchive       = "static library"
	StageLinkerScripts = "linker scripts"
)

// Pipeline runs the build stages in order. It holds no per-build state;
// everything a build needs is passed in through domain.BuildConfig.
type Pipeline struct {
	executor  ports.Executor
	fs        ports.ArtifactFS
	emitter   ports.DirectiveEmitter
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Pipeline.
func New(
	executor ports.Executor,
	fs ports.ArtifactFS,
	emitter ports.DirectiveEmitter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		executor:  executor,
		fs:        fs,
		emitter:   emitter,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run builds the kernel, archives its objects and assembles the linker scripts.
// The first failing stage aborts the run.
func (p *Pipeline) Run(ctx context.Context, cfg domain.BuildConfig, tools domain.Tools) (domain.Artifacts, error) {
	err := p.stage(ctx, StageKernel, func(ctx context.Context) error {
		return p.BuildKernel(ctx, cfg, tools.Kraft)
	})
	if err != nil {
		return domain.Artifacts{}, err
	}

	var objects []string
	err = p.stage(ctx, StageArchive, func(ctx context.Context) error {
		var err error
		objects, err = p.CreateStaticLibrary(ctx, cfg, tools.Archiver)
		return err
	})
	if err != nil {
		return domain.Artifacts{}, err
	}

	err = p.stage(ctx, StageLinkerScripts, func(context.Context) error {
		_, err := p.CreateLinkerScripts(cfg)
		return err
	})
	if err != nil {
		return domain.Artifacts{}, err
	}

	return domain.Artifacts{
		Objects:             objects,
		Archive:             cfg.ArchivePath(),
		DefaultLinkerScript: cfg.DefaultLinkerScriptOut(),
		MergedLinkerScript:  cfg.MergedLinkerScriptOut(),
	}, nil
}

func (p *Pipeline) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := p.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}
