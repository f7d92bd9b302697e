package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// ManifestFile is the project manifest kraft requires in the output directory.
	ManifestFile = "Kraftfile"
	// MakefileUK is the optional secondary build description.
	MakefileUK = "Makefile.uk"
	// ArchiveName is the file name of the produced static archive.
	ArchiveName = "libunikraft.a"
	// LibraryName is the archive name as passed to the linker.
	LibraryName = "unikraft"
	// DefaultLinkerScriptName is the file the platform's default linker script is copied to.
	DefaultLinkerScriptName = "default_unikraft_linker_script.ld"
	// MergedLinkerScriptName is the file all extra linker script fragments are merged into.
	MergedLinkerScriptName = "unikraft_linker_script.ld"
	// ExtraLinkerScriptName is the fragment each kernel library may provide.
	ExtraLinkerScriptName = "extra.ld"

	buildDirName       = "build"
	platLinkerScript   = "link64.lds"
	objectPrefix       = "lib"
	objectSuffix       = ".o"
	linkerObjectSuffix = ".ld.o"
)

// BuildConfig is the immutable configuration of one pipeline invocation.
type BuildConfig struct {
	outDir   string
	appDir   string
	arch     Architecture
	platform Platform
}

// NewBuildConfig creates the configuration shared by all pipeline stages.
func NewBuildConfig(outDir, appDir string, arch Architecture, platform Platform) (BuildConfig, error) {
	if outDir == "" {
		return BuildConfig{}, ErrMissingOutDir
	}
	return BuildConfig{
		outDir:   filepath.Clean(outDir),
		appDir:   filepath.Clean(appDir),
		arch:     arch,
		platform: platform,
	}, nil
}

// OutDir returns the output directory owned by this build.
func (c BuildConfig) OutDir() string { return c.outDir }

// AppDir returns the application source directory.
func (c BuildConfig) AppDir() string { return c.appDir }

// Arch returns the resolved architecture.
func (c BuildConfig) Arch() Architecture { return c.arch }

// Platform returns the resolved platform.
func (c BuildConfig) Platform() Platform { return c.platform }

// Target returns the "<arch>-<platform>" pair identifying this build.
func (c BuildConfig) Target() string {
	return fmt.Sprintf("%s-%s", c.arch, c.platform)
}

// BuildDir is the directory kraft writes object files to.
func (c BuildConfig) BuildDir() string {
	return filepath.Join(c.outDir, buildDirName)
}

// ArchivePath is the location of the produced static archive.
func (c BuildConfig) ArchivePath() string {
	return filepath.Join(c.outDir, ArchiveName)
}

// DefaultLinkerScript is the platform's linker script inside the kraft build tree.
func (c BuildConfig) DefaultLinkerScript() string {
	return filepath.Join(c.BuildDir(), "lib"+c.platform.String()+"plat", platLinkerScript)
}

// DefaultLinkerScriptOut is where the platform's linker script is copied to.
func (c BuildConfig) DefaultLinkerScriptOut() string {
	return filepath.Join(c.outDir, DefaultLinkerScriptName)
}

// MergedLinkerScriptOut is where the extra linker script fragments are merged into.
func (c BuildConfig) MergedLinkerScriptOut() string {
	return filepath.Join(c.outDir, MergedLinkerScriptName)
}

// LibDir is the directory holding one subdirectory per kernel library.
func (c BuildConfig) LibDir() string {
	return filepath.Join(c.outDir, ".unikraft", "unikraft", "lib")
}

// IsLibraryObject reports whether a file name denotes an object that belongs in the archive.
// Linker-generated objects are excluded.
func IsLibraryObject(name string) bool {
	return strings.HasPrefix(name, objectPrefix) &&
		strings.HasSuffix(name, objectSuffix) &&
		!strings.HasSuffix(name, linkerObjectSuffix)
}
