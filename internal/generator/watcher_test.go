package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_StartStop(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, filepath.Join(root, "mod.py"), "X = 1\n")

	gen := New(testConfig(root, t.TempDir()), false, nil)
	w, err := NewWatcher(gen)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Start(ctx)
	w.Stop()

	// Stop is idempotent.
	w.Stop()
}

func TestWatcher_ShouldProcessEvent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, filepath.Join(root, "mod.py"), "X = 1\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hi"), 0o644))

	gen := New(testConfig(root, t.TempDir()), false, nil)
	w, err := NewWatcher(gen)
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	assert.True(t, w.shouldProcessEvent(writeEvent(filepath.Join(root, "mod.py"))))
	assert.False(t, w.shouldProcessEvent(writeEvent(filepath.Join(root, "notes.txt"))))
}

func writeEvent(name string) fsnotify.Event {
	return fsnotify.Event{Name: name, Op: fsnotify.Write}
}
