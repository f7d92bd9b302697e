package ports

import "go.trai.ch/ukbuild/internal/core/domain"

// DirectiveEmitter writes directives for the invoking build environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=directive.go -destination=mocks/mock_directive.go -package=mocks
type DirectiveEmitter interface {
	// SetFormat selects how subsequent directives are rendered.
	SetFormat(format domain.DirectiveFormat)

	// Emit writes a single directive.
	Emit(d domain.Directive) error
}
