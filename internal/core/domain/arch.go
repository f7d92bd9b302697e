package domain

import "fmt"

// Architecture is a CPU architecture the kernel can be compiled for.
type Architecture string

// ArchX86_64 is the 64-bit x86 architecture.
const ArchX86_64 Architecture = "x86_64"

// archAliases maps every accepted identifier to its architecture.
// The Go spelling is accepted alongside the kraft one.
var archAliases = map[string]Architecture{
	"x86_64": ArchX86_64,
	"amd64":  ArchX86_64,
}

// Architectures returns all supported architectures.
func Architectures() []Architecture {
	return []Architecture{ArchX86_64}
}

// String returns the identifier passed to kraft via --arch.
func (a Architecture) String() string {
	return string(a)
}

// UnsupportedArchitectureError is returned for an unrecognized architecture identifier.
type UnsupportedArchitectureError struct {
	Value string
}

func (e *UnsupportedArchitectureError) Error() string {
	return fmt.Sprintf("architecture not supported: %s", e.Value)
}

// ResolveArchitecture maps a target architecture identifier to an Architecture.
func ResolveArchitecture(id string) (Architecture, error) {
	if arch, ok := archAliases[id]; ok {
		return arch, nil
	}
	return "", &UnsupportedArchitectureError{Value: id}
}
