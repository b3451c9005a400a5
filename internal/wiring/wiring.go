// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tally/internal/adapters/logger"
	_ "go.trai.ch/tally/internal/adapters/reference"
	_ "go.trai.ch/tally/internal/adapters/settings"
	// Register app nodes.
	_ "go.trai.ch/tally/internal/app"
)
