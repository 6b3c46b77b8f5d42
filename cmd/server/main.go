package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/portfolio/internal/app"
	"github.com/nfrund/portfolio/internal/config"
	"github.com/nfrund/portfolio/internal/content"
	"github.com/nfrund/portfolio/internal/logging"
	"github.com/nfrund/portfolio/internal/pubsub"
	"github.com/nfrund/portfolio/internal/reveal"
	"github.com/nfrund/portfolio/internal/server"
	"github.com/spf13/afero"
)

func main() {
	logger := logging.New()

	cfg, err := config.New()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	fsys := afero.NewOsFs()
	profile := content.Default()
	if path := cfg.GetContentFile(); path != "" {
		loaded, err := content.Load(fsys, path)
		if err != nil {
			logger.Error("Failed to load content", "path", path, "error", err)
			os.Exit(1)
		}
		profile = loaded
	}
	store := content.NewStore(profile)

	bus := pubsub.NewWatermillBridge()

	var watcher *content.Watcher
	if path := cfg.GetContentFile(); path != "" {
		watcher = content.NewWatcher(fsys, path, store, bus)
	}

	srv, err := server.New(server.Dependencies{
		Config:         cfg,
		Content:        store,
		Watcher:        watcher,
		Tracker:        reveal.NewTracker(cfg.GetRevealTTL()),
		PubSub:         bus,
		Logger:         logger,
		LiveReloadPath: app.LiveReloadPath(cfg),
	})
	if err != nil {
		logger.Error("Failed to create server", "error", err)
		os.Exit(1)
	}
	srv.RegisterRoutes()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	modules := app.NewModules(cfg)
	if err := srv.InitModules(ctx, modules); err != nil {
		logger.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}

	logger.Info("Serving portfolio",
		"owner", profile.Owner.Name,
		"env", cfg.GetAppEnv(),
		"live_reload", cfg.GetLiveReload(),
	)
	if err := srv.Run(ctx); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
