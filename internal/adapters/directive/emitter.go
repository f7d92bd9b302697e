// Package directive writes build directives for the invoking build system.
package directive

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/ukbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DirectiveEmitter = (*Emitter)(nil)

// Emitter implements ports.DirectiveEmitter.
//
// In cargo format every directive is a "cargo:key=value" line on stdout.
// In ldflags format only link directives reach stdout, as linker flags;
// warnings go to stderr and re-run triggers are dropped.
type Emitter struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	format domain.DirectiveFormat
}

// New creates an Emitter writing to the process streams in cargo format.
func New() *Emitter {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters creates an Emitter writing to the given streams in cargo format.
func NewWithWriters(stdout, stderr io.Writer) *Emitter {
	return &Emitter{
		stdout: stdout,
		stderr: stderr,
		format: domain.FormatCargo,
	}
}

// SetFormat selects how subsequent directives are rendered.
func (e *Emitter) SetFormat(format domain.DirectiveFormat) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.format = format
}

// Emit writes a single directive.
func (e *Emitter) Emit(d domain.Directive) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var (
		w    io.Writer
		line string
		err  error
	)
	switch e.format {
	case domain.FormatCargo:
		w = e.stdout
		line, err = cargoLine(d)
	case domain.FormatLdflags:
		w, line, err = e.ldflagsLine(d)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownDirectiveFormat, "cannot emit directive"), "format", string(e.format))
	}
	if err != nil {
		return err
	}
	if w == nil {
		return nil
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return zerr.Wrap(err, "failed to write directive")
	}
	return nil
}

func cargoLine(d domain.Directive) (string, error) {
	switch d.Kind {
	case domain.DirectiveRerunIfChanged:
		return "cargo:rerun-if-changed=" + d.Value, nil
	case domain.DirectiveRerunIfEnvChanged:
		return "cargo:rerun-if-env-changed=" + d.Value, nil
	case domain.DirectiveLinkSearch:
		return "cargo:rustc-link-search=native=" + d.Value, nil
	case domain.DirectiveLinkWholeArchive:
		return "cargo:rustc-link-lib=static:-bundle,+whole-archive=" + d.Value, nil
	case domain.DirectiveWarning:
		return "cargo:warning=" + d.Value, nil
	default:
		return "", unknownKind(d)
	}
}

func (e *Emitter) ldflagsLine(d domain.Directive) (io.Writer, string, error) {
	switch d.Kind {
	case domain.DirectiveRerunIfChanged, domain.DirectiveRerunIfEnvChanged:
		return nil, "", nil
	case domain.DirectiveLinkSearch:
		return e.stdout, "-L" + d.Value, nil
	case domain.DirectiveLinkWholeArchive:
		return e.stdout, "-Wl,--whole-archive -l" + d.Value + " -Wl,--no-whole-archive", nil
	case domain.DirectiveWarning:
		return e.stderr, "warning: " + d.Value, nil
	default:
		return nil, "", unknownKind(d)
	}
}

func unknownKind(d domain.Directive) error {
	return zerr.With(zerr.New("unknown directive kind"), "kind", int(d.Kind))
}
