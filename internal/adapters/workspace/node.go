package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ukbuild/internal/core/ports"
)

// NodeID is the unique identifier for the workspace locator Graft node.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[ports.WorkspaceLocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkspaceLocator, error) {
			return NewLocator(), nil
		},
	})
}
