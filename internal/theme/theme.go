// Package theme holds the light/dark flag for one visitor. The flag lives in an
// explicit Context handed to rendering; persistence goes through an injected Store.
package theme

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a value is neither dark nor light.
var ErrInvalidMode = errors.New("invalid theme mode")

// Mode is the visual theme.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// ParseMode accepts "dark" or "light" in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) String() string { return string(m) }

// Store persists a visitor's mode.
type Store interface {
	// Load returns the stored mode and whether one was stored.
	Load(ctx context.Context) (Mode, bool, error)
	Save(ctx context.Context, mode Mode) error
}

// Context is the theme state for one render. Toggle is the only setter.
type Context struct {
	mode  Mode
	store Store
}

// Load builds a Context from the store, using fallback when nothing is stored
// or the stored value cannot be read. A read failure is returned alongside a
// usable Context.
func Load(ctx context.Context, store Store, fallback Mode) (*Context, error) {
	tc := &Context{mode: fallback, store: store}
	mode, ok, err := store.Load(ctx)
	if err != nil {
		return tc, fmt.Errorf("load theme: %w", err)
	}
	if ok {
		tc.mode = mode
	}
	return tc, nil
}

// Mode returns the current mode.
func (c *Context) Mode() Mode { return c.mode }

// Dark reports whether the dark marker applies.
func (c *Context) Dark() bool { return c.mode == Dark }

// Toggle inverts the mode and persists it. When saving fails the new mode is
// kept in memory and the error is returned.
func (c *Context) Toggle(ctx context.Context) (Mode, error) {
	c.mode = c.mode.Opposite()
	if err := c.store.Save(ctx, c.mode); err != nil {
		return c.mode, fmt.Errorf("save theme: %w", err)
	}
	return c.mode, nil
}
