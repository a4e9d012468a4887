// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/extprune/internal/adapters/config"
	_ "go.trai.ch/extprune/internal/adapters/fs"
	_ "go.trai.ch/extprune/internal/adapters/history"
	_ "go.trai.ch/extprune/internal/adapters/logger"
	_ "go.trai.ch/extprune/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/extprune/internal/app"
	_ "go.trai.ch/extprune/internal/engine/reconciler"
)
