package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	var paths []string
	for _, name := range names {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("Invoice"), 0o644))
		paths = append(paths, p)
	}
	return paths
}

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.txt", "a.txt", "nested/c.md", "skip.pdf", "noext")

	got, err := DiscoverFiles(dir, nil)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "nested", "c.md"),
	}, got)
}

func TestDiscoverFilesCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt", "b.ocr")

	got, err := DiscoverFiles(dir, map[string]struct{}{"ocr": {}})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "b.ocr")}, got)
}

func TestDiscoverFilesMissingRoot(t *testing.T) {
	_, err := DiscoverFiles(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
}

func TestStartWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	paths := writeFiles(t, dir, "seed.txt", "nested/deep.txt", "ignored.bin")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	files, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
		Debounce:    10 * time.Millisecond,
	}, nil)
	require.NoError(t, err)

	// the initial scan is emitted before StartWatcher returns
	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case p := <-files:
			seen[p] = true
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for initial scan")
		}
	}
	require.True(t, seen[paths[0]])
	require.True(t, seen[paths[1]])
	require.False(t, seen[paths[2]])

	cancel()
	select {
	case _, open := <-files:
		require.False(t, open, "file channel must close on cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("file channel did not close after cancel")
	}
}

func TestStartWatcherNoRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{}, nil)
	require.Error(t, err)
}
