package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ukbuild/internal/core/ports"
)

// NodeID is the unique identifier for the build info store opener Graft node.
const NodeID graft.ID = "adapter.build_info_store"

func init() {
	graft.Register(graft.Node[ports.BuildInfoStoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildInfoStoreOpener, error) {
			return NewOpener(), nil
		},
	})
}
