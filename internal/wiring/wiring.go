// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/smelt/internal/adapters/config"
	_ "go.trai.ch/smelt/internal/adapters/fsloader"
	_ "go.trai.ch/smelt/internal/adapters/logger"
	_ "go.trai.ch/smelt/internal/adapters/replay"
	// Register cache, engine and app nodes.
	_ "go.trai.ch/smelt/internal/app"
	_ "go.trai.ch/smelt/internal/cache"
	_ "go.trai.ch/smelt/internal/engine/compiler"
)
