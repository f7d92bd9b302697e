// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ukbuild/internal/adapters/cas"
	_ "go.trai.ch/ukbuild/internal/adapters/config"
	_ "go.trai.ch/ukbuild/internal/adapters/directive"
	_ "go.trai.ch/ukbuild/internal/adapters/fs"
	_ "go.trai.ch/ukbuild/internal/adapters/logger"
	_ "go.trai.ch/ukbuild/internal/adapters/shell"
	_ "go.trai.ch/ukbuild/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/ukbuild/internal/adapters/watcher"
	_ "go.trai.ch/ukbuild/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/ukbuild/internal/app"
	_ "go.trai.ch/ukbuild/internal/engine/pipeline"
)
