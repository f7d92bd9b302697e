package domain

import "go.trai.ch/zerr"

var (
	// ErrTooManyPlatforms is returned when more than one platform flag is set.
	ErrTooManyPlatforms = zerr.New("too many platforms selected")

	// ErrNoPlatform is the reason a build is skipped when no platform flag is set.
	// ResolvePlatform never returns it; see PlatformChoice.Require.
	ErrNoPlatform = zerr.New("no platform selected")

	// ErrWorkspaceNotFound is returned when the application directory is not
	// overridden and cannot be inferred from the executable path.
	ErrWorkspaceNotFound = zerr.New("APP_DIR was not set and could not be inferred")

	// ErrMissingOutDir is returned when no output directory was configured.
	ErrMissingOutDir = zerr.New("output directory is not set")

	// ErrToolStart is returned when an external program cannot be launched.
	ErrToolStart = zerr.New("failed to execute external tool")

	// ErrCommandFailed is returned when an external program exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrKernelBuildFailed is returned when kraft build does not succeed.
	ErrKernelBuildFailed = zerr.New("kraft build was not successful")

	// ErrArchiveFailed is returned when the archiver does not succeed.
	ErrArchiveFailed = zerr.New("failed to create static library")

	// ErrUnknownDirectiveFormat is returned for an unrecognized directive output format.
	ErrUnknownDirectiveFormat = zerr.New("unknown directive format")
)
