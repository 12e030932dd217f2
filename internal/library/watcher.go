package library

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"imgswipe/internal/eventbus"
)

// DefaultDebounce is how long the watcher waits for a burst of changes to settle
const DefaultDebounce = 500 * time.Millisecond

// Watcher publishes a LibraryChangedEvent when image files under the root change
type Watcher struct {
	bus      eventbus.EventBus
	scanner  Scanner
	root     string
	maxDepth int
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// NewWatcher registers the root and its subdirectories with fsnotify
func NewWatcher(bus eventbus.EventBus, s Scanner, root string, maxDepth int) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w := &Watcher{
		bus:      bus,
		scanner:  s,
		root:     root,
		maxDepth: maxDepth,
		debounce: DefaultDebounce,
		fsw:      fsw,
	}
	if err := w.addTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// SetDebounce overrides DefaultDebounce
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root {
			if strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			rel, _ := filepath.Rel(w.root, path)
			if strings.Count(rel, string(filepath.Separator)) >= w.maxDepth {
				return fs.SkipDir
			}
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// Run forwards changes until ctx is done, then closes the underlying watcher
func (w *Watcher) Run(ctx context.Context) {
	defer w.fsw.Close()

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending []string
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			pending = append(pending, event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			log.WithField("changes", len(pending)).Debug("library changed")
			w.bus.Publish(eventbus.LibraryChangedEvent{Root: w.root, Paths: pending})
			pending = nil

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}

// relevant filters out chmod noise and non-image files; new directories are added to the watch.
// A removed or renamed directory arrives as one event on its own name, so those always count.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if event.Has(fsnotify.Create) {
		if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				log.WithError(err).Warn("failed to watch new directory")
			}
			return true
		}
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		return true
	}
	if s, ok := w.scanner.(*scanner); ok {
		return s.hasImageExtension(event.Name)
	}
	return true
}
