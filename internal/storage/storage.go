package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/spf13/afero"
)

// AferoStore is a Store backed by an afero filesystem: the OS for real
// exports, memory in tests.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewDirStore creates a Store rooted at dir on the OS filesystem.
func NewDirStore(dir string) (*AferoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return NewAferoStore(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// Save writes reader to path, creating parent directories.
func (s *AferoStore) Save(ctx context.Context, p string, reader io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return 0, err
	}
	f, err := s.fs.Create(p)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, reader)
}

// Open opens path for reading.
func (s *AferoStore) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	return s.fs.OpenFile(p, os.O_RDONLY, 0)
}

// Delete removes a single file.
func (s *AferoStore) Delete(ctx context.Context, p string) error {
	return s.fs.Remove(p)
}

// Clean removes every entry under the root, leaving the root itself.
func (s *AferoStore) Clean(ctx context.Context) error {
	entries, err := afero.ReadDir(s.fs, "/")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if err := s.fs.RemoveAll("/" + entry.Name()); err != nil {
			return fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
	}
	return nil
}
