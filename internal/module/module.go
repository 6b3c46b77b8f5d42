package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/portfolio/internal/registry"
)

// Module is an optional feature mounted next to the page routes.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register publishes the module's services into the registry before any
	// module boots.
	Register(reg *registry.Registry) error

	// Boot mounts routes and starts background work. Goroutines must stop
	// when ctx is cancelled.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown releases resources during graceful shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op Register, Boot and Shutdown methods for embedding.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}
