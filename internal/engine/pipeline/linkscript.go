package pipeline

import (
	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// CreateLinkerScripts copies the platform's default linker script and merges the
// extra.ld fragment of every kernel library into a single script.
//
// Fragments are merged in library name order. It returns the merged fragments.
func (p *Pipeline) CreateLinkerScripts(cfg domain.BuildConfig) ([]string, error) {
	if err := p.fs.CopyFile(cfg.DefaultLinkerScript(), cfg.DefaultLinkerScriptOut()); err != nil {
		return nil, zerr.Wrap(err, "failed to copy default linker script")
	}

	fragments, err := p.fs.LinkerFragments(cfg.LibDir(), domain.ExtraLinkerScriptName)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list linker script fragments")
	}

	if err := p.fs.Concat(cfg.MergedLinkerScriptOut(), fragments); err != nil {
		return nil, zerr.Wrap(err, "failed to merge linker scripts")
	}

	return fragments, nil
}
