package analytics

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/portfolio/internal/module"
	"github.com/nfrund/portfolio/internal/registry"
	"github.com/nfrund/portfolio/internal/reveal"
)

// Module mounts GET /stats and feeds the counter from the bus.
type Module struct {
	module.BaseModule
	counter *Counter
	tracker *reveal.Tracker
}

// New creates the analytics module. Its services come from the registry at boot.
func New() *Module {
	return &Module{counter: NewCounter()}
}

func (m *Module) Name() string { return "analytics" }

func (m *Module) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	sub, ok := registry.Get(reg, registry.SubscriberKey)
	if !ok {
		return errors.New("analytics: no subscriber registered")
	}
	if err := m.counter.Subscribe(ctx, sub); err != nil {
		return fmt.Errorf("subscribe analytics: %w", err)
	}
	m.tracker, _ = registry.Get(reg, registry.RevealTrackerKey)

	router.GET("/stats", m.stats)
	registry.Logger(reg).Info("Counting page activity", "path", "/stats")
	return nil
}

func (m *Module) stats(c echo.Context) error {
	snap := m.counter.Snapshot()
	if m.tracker != nil {
		snap.ActiveViews = m.tracker.Len()
	}
	return c.JSON(http.StatusOK, snap)
}
