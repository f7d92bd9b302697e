package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DirectiveKind identifies an instruction for the invoking build environment.
type DirectiveKind int

const (
	// DirectiveRerunIfChanged asks to re-run when a file changes.
	DirectiveRerunIfChanged DirectiveKind = iota
	// DirectiveRerunIfEnvChanged asks to re-run when an environment variable changes.
	DirectiveRerunIfEnvChanged
	// DirectiveLinkSearch adds a native library search path.
	DirectiveLinkSearch
	// DirectiveLinkWholeArchive links a static library without discarding unreferenced members.
	DirectiveLinkWholeArchive
	// DirectiveWarning surfaces a diagnostic that is not an error.
	DirectiveWarning
)

// Directive is a single line of output for the invoking build environment.
type Directive struct {
	Kind  DirectiveKind
	Value string
}

// RerunIfChanged returns a directive naming a file that should trigger a re-run.
func RerunIfChanged(path string) Directive {
	return Directive{Kind: DirectiveRerunIfChanged, Value: path}
}

// RerunIfEnvChanged returns a directive naming an environment variable that should trigger a re-run.
func RerunIfEnvChanged(name string) Directive {
	return Directive{Kind: DirectiveRerunIfEnvChanged, Value: name}
}

// LinkSearch returns a directive adding dir to the native library search path.
func LinkSearch(dir string) Directive {
	return Directive{Kind: DirectiveLinkSearch, Value: dir}
}

// LinkWholeArchive returns a directive linking the named static library with whole-archive semantics.
func LinkWholeArchive(name string) Directive {
	return Directive{Kind: DirectiveLinkWholeArchive, Value: name}
}

// Warning returns a diagnostic directive.
func Warning(msg string) Directive {
	return Directive{Kind: DirectiveWarning, Value: msg}
}

// DirectiveFormat selects how directives are rendered.
type DirectiveFormat string

const (
	// FormatCargo renders "cargo:key=value" lines.
	FormatCargo DirectiveFormat = "cargo"
	// FormatLdflags renders plain linker flags, one per line.
	FormatLdflags DirectiveFormat = "ldflags"
)

// ParseDirectiveFormat parses a format name. The empty string selects FormatCargo.
func ParseDirectiveFormat(s string) (DirectiveFormat, error) {
	switch DirectiveFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCargo:
		return FormatCargo, nil
	case FormatLdflags:
		return FormatLdflags, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownDirectiveFormat, "invalid directive format"), "format", s)
	}
}
