// Package fs provides file system adapters for build artifacts.
package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ukbuild/internal/core/ports"
)

const (
	ArtifactsNodeID graft.ID = "adapter.fs.artifacts"
	HasherNodeID    graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.ArtifactFS]{
		ID:        ArtifactsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactFS, error) {
			return NewArtifacts(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
