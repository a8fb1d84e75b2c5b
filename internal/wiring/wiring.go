// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xclean/internal/adapters/config"
	_ "go.trai.ch/xclean/internal/adapters/fs"
	_ "go.trai.ch/xclean/internal/adapters/logger"
	_ "go.trai.ch/xclean/internal/adapters/plist"
	_ "go.trai.ch/xclean/internal/adapters/prefs"
	_ "go.trai.ch/xclean/internal/adapters/telemetry"
	_ "go.trai.ch/xclean/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/xclean/internal/app"
)
