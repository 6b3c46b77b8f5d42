package app

import (
	"github.com/nfrund/portfolio/internal/analytics"
	"github.com/nfrund/portfolio/internal/config"
	"github.com/nfrund/portfolio/internal/livereload"
	"github.com/nfrund/portfolio/internal/module"
)

// NewModules returns the modules enabled for cfg. This is the single source
// of truth for which optional features are mounted. Modules resolve the
// services they need from the registry when they boot.
func NewModules(cfg config.Provider) []module.Module {
	modules := []module.Module{
		analytics.New(),
	}
	if cfg.GetLiveReload() {
		modules = append(modules, livereload.New())
	}
	return modules
}

// LiveReloadPath is the websocket path pages should connect to, or empty when
// live reload is disabled.
func LiveReloadPath(cfg config.Provider) string {
	if cfg.GetLiveReload() {
		return livereload.Path
	}
	return ""
}
