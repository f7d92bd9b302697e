package ports

// ArtifactFS defines the file operations the pipeline performs on the output directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactFS interface {
	// CopyFile copies src to dst, replacing dst. A missing src yields an error
	// matching fs.ErrNotExist.
	CopyFile(src, dst string) error

	// RemoveFile removes path. A missing path is not an error.
	RemoveFile(path string) error

	// ObjectFiles lists the library objects directly inside dir.
	// A missing dir yields an empty list.
	ObjectFiles(dir string) ([]string, error)

	// LinkerFragments lists <sub>/<name> for every immediate subdirectory of
	// libDir that contains it. A missing libDir is an error.
	LinkerFragments(libDir, name string) ([]string, error)

	// Concat writes the contents of srcs, in order, to dst.
	Concat(dst string, srcs []string) error
}
