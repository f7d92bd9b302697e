package ports

// WorkspaceLocator determines the application's source root directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type WorkspaceLocator interface {
	// Locate returns the application directory.
	Locate() (string, error)

	// OverrideEnv returns the name of the environment variable that overrides inference.
	OverrideEnv() string
}
