// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cook/internal/adapters/config"
	_ "go.trai.ch/cook/internal/adapters/fs"
	_ "go.trai.ch/cook/internal/adapters/gc"
	_ "go.trai.ch/cook/internal/adapters/logger"
	_ "go.trai.ch/cook/internal/adapters/metrics"
	_ "go.trai.ch/cook/internal/adapters/sandbox"
	// Register app nodes.
	_ "go.trai.ch/cook/internal/app"
)
