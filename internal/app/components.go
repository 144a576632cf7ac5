package app

import (
	"context"

	"go.trai.ch/modkit/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	// Shutdown flushes pending spans. It may be nil.
	Shutdown func(context.Context) error
}
