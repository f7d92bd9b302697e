package directive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ukbuild/internal/core/ports"
)

// NodeID is the unique identifier for the directive emitter Graft node.
const NodeID graft.ID = "adapter.directive"

func init() {
	graft.Register(graft.Node[ports.DirectiveEmitter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DirectiveEmitter, error) {
			return New(), nil
		},
	})
}
