package ports

import "go.trai.ch/ukbuild/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving build information.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build info for a given target.
	// Returns nil, nil if not found.
	Get(target string) (*domain.BuildInfo, error)

	// Put stores the build info.
	Put(info domain.BuildInfo) error
}

// BuildInfoStoreOpener opens the store kept in a build's output directory.
type BuildInfoStoreOpener interface {
	Open(path string) (BuildInfoStore, error)
}
