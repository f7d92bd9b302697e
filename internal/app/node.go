package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ukbuild/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/ukbuild/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/ukbuild/internal/adapters/directive"          //nolint:depguard // Wired in app layer
	"go.trai.ch/ukbuild/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/ukbuild/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/ukbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/ukbuild/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/ukbuild/internal/adapters/workspace"          //nolint:depguard // Wired in app layer
	"go.trai.ch/ukbuild/internal/core/ports"
	"go.trai.ch/ukbuild/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			workspace.NodeID,
			config.NodeID,
			pipeline.NodeID,
			directive.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			watcher.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			logger.ConcreteNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	locator, err := graft.Dep[ports.WorkspaceLocator](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	p, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[ports.DirectiveEmitter](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.BuildInfoStoreOpener](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.FileWatcher](ctx)
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

	return New(locator, loader, p, emitter, hasher, stores, fileWatcher, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	levels, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, levels), nil
}
