package storage

import (
	"context"
	"io"
)

// Store is a destination for published site files. Paths are slash-separated
// and relative to the store root.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	// Clean removes everything under the store root.
	Clean(ctx context.Context) error
}
