package engine

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/gnolang/refit/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changeRecorder struct {
	mu      sync.Mutex
	changes [][]string
}

func (r *changeRecorder) record(changed []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, changed)
}

func (r *changeRecorder) seen(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.changes {
		if slices.Contains(c, path) {
			return true
		}
	}
	return false
}

func TestWatch(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	files := createTempFiles(t, root, "src/a.php", "src/skipped/b.php", "refit.yaml")

	eng := New(catalog.Default(), nil)
	eng.Paths([]string{filepath.Join(root, "src")})
	eng.IgnorePath(filepath.Join(root, "src", "skipped"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rec changeRecorder
	done := make(chan error, 1)
	go func() {
		done <- eng.Watch(ctx, []string{files[2]}, rec.record)
	}()

	touch := func(path string) func() bool {
		return func() bool {
			_ = os.WriteFile(path, []byte("<?php\n// changed\n"), 0o644)
			return rec.seen(path)
		}
	}

	require.Eventually(t, touch(files[0]), 5*time.Second, 50*time.Millisecond)
	require.Eventually(t, touch(files[2]), 5*time.Second, 50*time.Millisecond)

	_ = os.WriteFile(files[1], []byte("<?php\n"), 0o644)
	time.Sleep(3 * debounce)
	assert.False(t, rec.seen(files[1]))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchNewDirectory(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	src := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(src, 0o755))

	eng := New(catalog.Default(), nil)
	eng.Paths([]string{src})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rec changeRecorder
	done := make(chan error, 1)
	go func() {
		done <- eng.Watch(ctx, nil, rec.record)
	}()
	// give the watcher time to register src
	time.Sleep(3 * debounce)

	created := filepath.Join(src, "nested", "deeper", "x.php")
	require.NoError(t, os.MkdirAll(filepath.Dir(created), 0o755))
	require.NoError(t, os.WriteFile(created, []byte("<?php\n"), 0o644))

	assert.Eventually(t, func() bool { return rec.seen(created) }, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchMissingPath(t *testing.T) {
	t.Parallel()
	eng := New(catalog.Default(), nil)
	eng.Paths([]string{filepath.Join(t.TempDir(), "missing")})

	err := eng.Watch(context.Background(), nil, func([]string) {})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
