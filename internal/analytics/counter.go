// Package analytics keeps in-memory counters of page activity fed by the event bus.
package analytics

import (
	"context"
	"sync"

	"github.com/nfrund/portfolio/internal/events"
	"github.com/nfrund/portfolio/internal/pubsub"
)

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	PageViews    int64            `json:"pageViews"`
	ThemeToggles map[string]int64 `json:"themeToggles"`
	Reveals      map[string]int64 `json:"reveals"`
	// ActiveViews is the number of page views the reveal tracker still holds.
	ActiveViews int `json:"activeViews"`
}

// Counter aggregates page views, theme toggles and section reveals.
type Counter struct {
	mu           sync.Mutex
	pageViews    int64
	themeToggles map[string]int64
	reveals      map[string]int64
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{
		themeToggles: make(map[string]int64),
		reveals:      make(map[string]int64),
	}
}

func (c *Counter) onPageView(_ context.Context, _ events.PageViewed) error {
	c.mu.Lock()
	c.pageViews++
	c.mu.Unlock()
	return nil
}

func (c *Counter) onThemeToggle(_ context.Context, e events.ThemeToggled) error {
	c.mu.Lock()
	c.themeToggles[e.Mode]++
	c.mu.Unlock()
	return nil
}

func (c *Counter) onSectionReveal(_ context.Context, e events.SectionRevealed) error {
	c.mu.Lock()
	c.reveals[e.Section]++
	c.mu.Unlock()
	return nil
}

// Subscribe attaches the counter to the bus until ctx is cancelled.
func (c *Counter) Subscribe(ctx context.Context, sub pubsub.Subscriber) error {
	if err := pubsub.Subscribe(ctx, sub, events.PageView, c.onPageView); err != nil {
		return err
	}
	if err := pubsub.Subscribe(ctx, sub, events.ThemeToggle, c.onThemeToggle); err != nil {
		return err
	}
	return pubsub.Subscribe(ctx, sub, events.SectionReveal, c.onSectionReveal)
}

// Snapshot copies the current counters.
func (c *Counter) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot{
		PageViews:    c.pageViews,
		ThemeToggles: make(map[string]int64, len(c.themeToggles)),
		Reveals:      make(map[string]int64, len(c.reveals)),
	}
	for k, v := range c.themeToggles {
		s.ThemeToggles[k] = v
	}
	for k, v := range c.reveals {
		s.Reveals[k] = v
	}
	return s
}
