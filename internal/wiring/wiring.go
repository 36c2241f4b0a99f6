// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/prep/internal/adapters/config"
	_ "go.trai.ch/prep/internal/adapters/docker"
	_ "go.trai.ch/prep/internal/adapters/fs"
	_ "go.trai.ch/prep/internal/adapters/github"
	_ "go.trai.ch/prep/internal/adapters/junit"
	_ "go.trai.ch/prep/internal/adapters/logger"
	_ "go.trai.ch/prep/internal/adapters/manifest"
	_ "go.trai.ch/prep/internal/adapters/shell"
	_ "go.trai.ch/prep/internal/adapters/store"
	_ "go.trai.ch/prep/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/prep/internal/app"
	_ "go.trai.ch/prep/internal/engine/bootstrap"
	_ "go.trai.ch/prep/internal/engine/verifier"
)
