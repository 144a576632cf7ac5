// Package watcher reports changes to the build inputs of module directories.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// hiddenDirs hold tooling state, never module sources.
var hiddenDirs = map[string]bool{
	".git":    true,
	".jj":     true,
	".gradle": true,
	".idea":   true,
}

const eventBuffer = 64

// Watcher watches module directories with fsnotify and reports changes to
// java sources, library jars, manifests and order files.
type Watcher struct {
	notify *fsnotify.Watcher
	logger ports.Logger
	events chan ports.WatchEvent

	mu    sync.RWMutex
	roots []string
}

// NewWatcher creates a watcher that is idle until Start.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	n, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	return &Watcher{
		notify: n,
		logger: logger,
		events: make(chan ports.WatchEvent, eventBuffer),
	}, nil
}

// IsBuildInput reports whether a change to path can alter a build.
func IsBuildInput(path string) bool {
	switch filepath.Base(path) {
	case domain.ManifestFileName, domain.OrderFileName:
		return true
	case domain.BuildGradleFileName, domain.SettingsGradleFileName:
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".java", ".jar":
		return true
	}
	return false
}

// Start watches every directory below each module root.
func (w *Watcher) Start(ctx context.Context, roots []string) error {
	w.mu.Lock()
	w.roots = make([]string, 0, len(roots))
	for _, root := range roots {
		w.roots = append(w.roots, filepath.Clean(root))
	}
	w.mu.Unlock()

	for _, root := range roots {
		if err := w.addTree(root); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch module"), "root", root)
		}
	}

	go w.loop(ctx)
	return nil
}

// Stop releases the underlying notifier. Events ends once pending events drain.
func (w *Watcher) Stop() error {
	return w.notify.Close()
}

// Events yields changes until the watcher stops or its context ends.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for ev := range w.events {
			if !yield(ev) {
				return
			}
		}
	}
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil //nolint:nilerr // Unreadable subdirectories are not watched
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && hiddenDirs[d.Name()] {
			return fs.SkipDir
		}
		return w.notify.Add(path)
	})
}

// rootOf returns the module root containing path.
func (w *Watcher) rootOf(path string) string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	best := ""
	for _, root := range w.roots {
		if (path == root || strings.HasPrefix(path, root+string(os.PathSeparator))) && len(root) > len(best) {
			best = root
		}
	}
	return best
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-w.notify.Events:
			if !ok {
				return
			}
			if raw.Has(fsnotify.Create) {
				w.followNewDir(raw.Name)
			}
			ev, ok := w.translate(raw)
			if !ok {
				continue
			}
			select {
			case w.events <- ev:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.notify.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("watcher: " + err.Error())
			}
		}
	}
}

// followNewDir starts watching a directory created after Start. Files already
// written into it are reported so a freshly copied source tree triggers a build.
func (w *Watcher) followNewDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || hiddenDirs[info.Name()] {
		return
	}
	if err := w.addTree(path); err != nil && w.logger != nil {
		w.logger.Warn("watcher: " + err.Error())
	}
}

func (w *Watcher) translate(raw fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case raw.Has(fsnotify.Write):
		op = ports.OpWrite
	case raw.Has(fsnotify.Create):
		op = ports.OpCreate
	case raw.Has(fsnotify.Remove):
		op = ports.OpRemove
	case raw.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}

	// A removed directory can no longer be stat'ed; an extensionless name is
	// taken to be one since it may have held sources.
	gone := (op == ports.OpRemove || op == ports.OpRename) && filepath.Ext(raw.Name) == ""
	if !gone && !IsBuildInput(raw.Name) {
		return ports.WatchEvent{}, false
	}

	return ports.WatchEvent{Path: raw.Name, Root: w.rootOf(raw.Name), Operation: op}, true
}
