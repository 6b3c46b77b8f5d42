package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nfrund/portfolio/internal/events"
	"github.com/nfrund/portfolio/internal/pubsub"
	"github.com/spf13/afero"
)

// Watcher reloads the content file into a Store whenever it changes on disk.
type Watcher struct {
	fs        afero.Fs
	path      string
	store     *Store
	publisher pubsub.Publisher
	logger    *slog.Logger
}

// NewWatcher creates a watcher for path. fs must be backed by the real
// filesystem for change notifications to arrive.
func NewWatcher(fs afero.Fs, path string, store *Store, publisher pubsub.Publisher) *Watcher {
	if publisher == nil {
		publisher = pubsub.Discard
	}
	return &Watcher{
		fs:        fs,
		path:      filepath.Clean(path),
		store:     store,
		publisher: publisher,
		logger:    slog.Default().With("component", "content-watcher", "path", path),
	}
}

// Run blocks until ctx is cancelled. The parent directory is watched rather
// than the file itself because editors commonly replace files by rename.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.logger.Info("Watching content file for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", "error", err)
		}
	}
}

// reload parses the file and swaps the snapshot. A broken file leaves the
// previous snapshot in place.
func (w *Watcher) reload(ctx context.Context) {
	profile, err := Load(w.fs, w.path)
	if err != nil {
		w.logger.Error("Content reload failed, keeping previous content", "error", err)
		return
	}

	w.store.Swap(profile)
	w.logger.Info("Content reloaded", "projects", len(profile.Projects), "skills", len(profile.Skills))

	err = pubsub.Publish(ctx, w.publisher, events.ContentReload, events.ContentReloaded{
		Path:      w.path,
		Projects:  len(profile.Projects),
		Skills:    len(profile.Skills),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		w.logger.Warn("Failed to publish content reload", "error", err)
	}
}
