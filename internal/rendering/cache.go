package rendering

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/internal/pubsub"
)

// PageCache holds fully rendered pages keyed by catalog version. Pages are
// pure functions of the catalog, so an entry is valid until the catalog
// changes.
type PageCache struct {
	mu      sync.RWMutex
	version string
	pages   map[string][]byte
}

// NewPageCache creates an empty cache.
func NewPageCache() *PageCache {
	return &PageCache{pages: make(map[string][]byte)}
}

// Get returns the page stored under key for the given catalog version.
func (pc *PageCache) Get(version, key string) ([]byte, bool) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	if version != pc.version {
		return nil, false
	}
	page, ok := pc.pages[key]
	return page, ok
}

// Put stores a page. Storing under a new version drops every older entry.
func (pc *PageCache) Put(version, key string, page []byte) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if version != pc.version {
		pc.version = version
		pc.pages = make(map[string][]byte)
	}
	pc.pages[key] = page
}

// Invalidate drops everything.
func (pc *PageCache) Invalidate() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.version = ""
	pc.pages = make(map[string][]byte)
}

// Len is the number of cached pages.
func (pc *PageCache) Len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.pages)
}

// InvalidateOnReload drops the cache whenever the catalog is replaced.
func (pc *PageCache) InvalidateOnReload(ctx context.Context, sub pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, sub, catalog.Reloaded, func(ctx context.Context, ev catalog.ReloadedEvent) error {
		pc.Invalidate()
		slog.Debug("Page cache invalidated", "version", ev.Version)
		return nil
	})
}
