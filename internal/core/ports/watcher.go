package ports

import "context"

// FileWatcher reports changes to a fixed set of files.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type FileWatcher interface {
	// Watch starts watching files and returns batches of changed paths,
	// coalesced over a quiet window. The channel is closed once ctx is done.
	Watch(ctx context.Context, files []string) (<-chan []string, error)
}
