package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Watcher reloads a catalog override file into a Store whenever it changes
// on disk. It is meant for local development.
type Watcher struct {
	fs    afero.Fs
	path  string
	store *Store
}

// NewWatcher creates a Watcher for path. fsys is used for reading; change
// notifications always come from the OS.
func NewWatcher(fsys afero.Fs, path string, store *Store) *Watcher {
	return &Watcher{fs: fsys, path: filepath.Clean(path), store: store}
}

// Start begins watching and returns once the watch is established. Watching
// stops when ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}

	// Watch the directory: editors often replace the file rather than
	// writing it in place, which drops a watch on the file itself.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go w.run(ctx, fw)

	slog.Debug("Started catalog watcher", "path", w.path)
	return nil
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher) {
	defer func() {
		fw.Close()
		slog.Info("Catalog watcher stopped", "path", w.path)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload(ctx)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			slog.Error("Catalog watcher error", "error", err)
		}
	}
}

// reload keeps the current snapshot when the file on disk is invalid.
func (w *Watcher) reload(ctx context.Context) {
	next, err := LoadFile(w.fs, w.path)
	if err != nil {
		slog.Error("Failed to reload catalog, keeping previous version",
			"path", w.path, "version", w.store.Current().Version(), "error", err)
		return
	}
	w.store.Replace(ctx, next)
}
