package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "methods.json")
	fs := afero.NewOsFs()

	require.NoError(t, WriteFile(fs, path, Default()))

	store := NewStore(Default(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, NewWatcher(fs, path, store).Start(ctx))

	next := New([]Method{{Name: "onlyOne", Entity: EntityUtility, Description: "d"}}, path)
	require.NoError(t, WriteFile(fs, path, next))

	assert.Eventually(t, func() bool {
		return store.Current().Version() == next.Version()
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcherKeepsPreviousOnInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "methods.json")

	store := NewStore(Default(), nil)
	before := store.Current().Version()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, NewWatcher(afero.NewOsFs(), path, store).Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte(`{"methods":[{"name":""}]}`), 0o644))

	// Give the watcher time to observe the event and reject the file.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, before, store.Current().Version())
}

func TestWatcherStartFailsForMissingDirectory(t *testing.T) {
	store := NewStore(Default(), nil)
	err := NewWatcher(afero.NewOsFs(), "/does/not/exist/methods.json", store).Start(context.Background())
	assert.Error(t, err)
}
