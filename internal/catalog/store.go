package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/nfrund/zbd-node-docs/internal/pubsub"
)

// ReloadedEvent is the payload of Reloaded.
type ReloadedEvent struct {
	Version string `json:"version"`
	Source  string `json:"source"`
	Methods int    `json:"methods"`
}

// Reloaded is published on the bus every time the Store swaps its snapshot.
var Reloaded = pubsub.NewEvent[ReloadedEvent]("catalog.reloaded")

// Store holds the snapshot currently served by the page. Reads never block.
type Store struct {
	current   atomic.Pointer[Catalog]
	publisher pubsub.Publisher
}

// NewStore creates a Store serving initial. publisher may be nil.
func NewStore(initial *Catalog, publisher pubsub.Publisher) *Store {
	s := &Store{publisher: publisher}
	s.current.Store(initial)
	return s
}

// Current returns the active snapshot.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Replace swaps in next and announces it. Replacing with an identical
// version is a no-op.
func (s *Store) Replace(ctx context.Context, next *Catalog) {
	prev := s.current.Swap(next)
	if prev != nil && prev.Version() == next.Version() {
		return
	}

	slog.Info("Catalog replaced", "version", next.Version(), "source", next.Source(), "methods", next.Len())

	if s.publisher == nil {
		return
	}
	event := ReloadedEvent{
		Version: next.Version(),
		Source:  next.Source(),
		Methods: next.Len(),
	}
	if err := pubsub.Publish(ctx, s.publisher, Reloaded, event); err != nil {
		slog.Error("Failed to publish catalog reload event", "error", err)
	}
}
