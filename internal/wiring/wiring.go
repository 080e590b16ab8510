// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bundle/internal/adapters/cas"
	_ "go.trai.ch/bundle/internal/adapters/config"
	_ "go.trai.ch/bundle/internal/adapters/fs"
	_ "go.trai.ch/bundle/internal/adapters/logger"
	_ "go.trai.ch/bundle/internal/adapters/packages"
	_ "go.trai.ch/bundle/internal/adapters/shell"
	_ "go.trai.ch/bundle/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/bundle/internal/app"
	_ "go.trai.ch/bundle/internal/engine/lockfile"
)
