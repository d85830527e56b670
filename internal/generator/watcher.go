package generator

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/example/pydocstub/internal/docpath"
)

// Watcher watches the library root for Python source changes and triggers
// a regeneration pass after a quiet period.
type Watcher struct {
	gen          *Generator
	rootDir      string
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
	stopOnce     sync.Once
}

// NewWatcher creates a file watcher driving the given generator.
func NewWatcher(gen *Generator) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		gen:          gen,
		rootDir:      gen.cfg.Paths.LibraryRoot,
		watcher:      watcher,
		debounceTime: 500 * time.Millisecond,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}

	if err := w.addDirectoriesRecursively(w.rootDir); err != nil {
		watcher.Close()
		return nil, err
	}

	return w, nil
}

// Start begins watching for file changes.
func (w *Watcher) Start(ctx context.Context) {
	go w.watch(ctx)
}

// Stop stops the file watcher and waits for the event loop to drain.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		w.watcher.Close()
	})
}

// watch is the main event loop with debouncing logic.
func (w *Watcher) watch(ctx context.Context) {
	defer close(w.doneCh)

	var debounceTimer *time.Timer
	regenCh := make(chan struct{}, 1)
	changed := 0

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.shouldProcessEvent(event) {
				continue
			}
			changed++

			// New directories join the watch so modules added later are seen.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addDirectoriesRecursively(event.Name); err != nil {
						log.Printf("Warning: failed to watch new directory %s: %v", event.Name, err)
					}
				}
			}

			if debounceTimer != nil {
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
			}
			debounceTimer = time.AfterFunc(w.debounceTime, func() {
				select {
				case regenCh <- struct{}{}:
				default:
				}
			})

		case <-regenCh:
			w.triggerRegenerate(ctx, changed)
			changed = 0

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// triggerRegenerate runs one full generation pass.
func (w *Watcher) triggerRegenerate(ctx context.Context, changed int) {
	if changed == 0 {
		return
	}

	log.Printf("Regenerating stubs after %d change(s)...", changed)
	start := time.Now()

	summary, err := w.gen.Run(ctx)
	if err != nil {
		log.Printf("Error during regeneration: %v", err)
		return
	}

	log.Printf("Regeneration complete in %v (%d written, %d skipped, %d failed)",
		time.Since(start), summary.Written, summary.Skipped, summary.Failed)
}

// shouldProcessEvent checks if an event should trigger regeneration.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		return event.Op&fsnotify.Create != 0
	}

	return strings.HasSuffix(event.Name, docpath.SourceExt)
}

// addDirectoriesRecursively adds all directories in the tree to the watcher.
func (w *Watcher) addDirectoriesRecursively(rootPath string) error {
	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Log but continue - don't fail the entire watch for one directory
			log.Printf("Warning: error accessing %s: %v", path, err)
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if base := filepath.Base(path); base == "__pycache__" || (strings.HasPrefix(base, ".") && path != rootPath) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			log.Printf("Warning: failed to watch directory %s: %v", path, err)
		}
		return nil
	})
}
