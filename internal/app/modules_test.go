package app

import (
	"testing"

	"github.com/nfrund/portfolio/internal/config"
	"github.com/nfrund/portfolio/internal/livereload"
	"github.com/stretchr/testify/assert"
)

func moduleNames(cfg config.Provider) []string {
	var names []string
	for _, m := range NewModules(cfg) {
		names = append(names, m.Name())
	}
	return names
}

func TestNewModules(t *testing.T) {
	assert.Equal(t, []string{"analytics"}, moduleNames(&config.Config{}))
	assert.Equal(t, []string{"analytics", "livereload"}, moduleNames(&config.Config{LiveReload: true}))
}

func TestLiveReloadPath(t *testing.T) {
	assert.Empty(t, LiveReloadPath(&config.Config{}))
	assert.Equal(t, livereload.Path, LiveReloadPath(&config.Config{LiveReload: true}))
}
