// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/modkit/internal/adapters/archive"
	_ "go.trai.ch/modkit/internal/adapters/cas"
	_ "go.trai.ch/modkit/internal/adapters/config"
	_ "go.trai.ch/modkit/internal/adapters/fs"
	_ "go.trai.ch/modkit/internal/adapters/logger"
	_ "go.trai.ch/modkit/internal/adapters/manifest"
	_ "go.trai.ch/modkit/internal/adapters/shell"
	_ "go.trai.ch/modkit/internal/adapters/telemetry"
	_ "go.trai.ch/modkit/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/modkit/internal/app"
)
