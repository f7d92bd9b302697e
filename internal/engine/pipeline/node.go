package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ukbuild/internal/adapters/directive"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ukbuild/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ukbuild/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ukbuild/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ukbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ukbuild/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.ArtifactsNodeID,
			directive.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			artifacts, err := graft.Dep[ports.ArtifactFS](ctx)
			if err != nil {
				return nil, err
			}

			emitter, err := graft.Dep[ports.DirectiveEmitter](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, artifacts, emitter, telemetry, log), nil
		},
	})
}
