// Package watcher monitors a content directory for changes and rebuilds the
// post index automatically.
//
// Post ordering, slug collision detection, and related-post scoring all depend
// on the full catalog, so any markdown change triggers a complete rebuild
// rather than an incremental one. Rebuilds are cheap at blog scale and a full
// pass keeps the index consistent with what `quill build` would produce.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aidanlsb/quill/internal/catalog"
	"github.com/aidanlsb/quill/internal/index"
)

// Watcher monitors a content directory and rebuilds the catalog on changes.
type Watcher struct {
	contentRoot string
	db          *index.Database

	debounceDelay time.Duration
	debug         bool
	buildOptions  catalog.Options

	fsWatcher *fsnotify.Watcher
	mu        sync.Mutex
	pendingAt time.Time
	pending   bool

	onRebuild func(result *catalog.Result, err error)
}

// Config holds configuration options for the Watcher.
type Config struct {
	ContentRoot   string
	Database      *index.Database // optional; rebuilds the on-disk index when set
	DebounceDelay time.Duration   // Default: 250ms
	Debug         bool
	BuildOptions  catalog.Options
	OnRebuild     func(result *catalog.Result, err error) // Optional callback
}

// New creates a new Watcher with the given configuration.
func New(cfg Config) (*Watcher, error) {
	if cfg.ContentRoot == "" {
		return nil, fmt.Errorf("content root is required")
	}

	debounce := cfg.DebounceDelay
	if debounce == 0 {
		debounce = 250 * time.Millisecond
	}

	return &Watcher{
		contentRoot:   cfg.ContentRoot,
		db:            cfg.Database,
		debounceDelay: debounce,
		debug:         cfg.Debug,
		buildOptions:  cfg.BuildOptions,
		onRebuild:     cfg.OnRebuild,
	}, nil
}

// Start begins watching the content directory for file changes.
// It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.fsWatcher.Close()

	if err := w.addWatchRecursive(w.contentRoot, 0); err != nil {
		return fmt.Errorf("failed to watch content directory: %w", err)
	}

	w.logDebug("Watching: %s", w.contentRoot)

	go w.processDebounced(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logDebug("Watcher error: %v", err)
		}
	}
}

// Rebuild scans the content directory and, when a database is configured,
// persists the result. It can be called directly without starting the watcher.
func (w *Watcher) Rebuild() (*catalog.Result, error) {
	result, err := catalog.BuildWithOptions(w.contentRoot, &w.buildOptions)
	if err != nil {
		return nil, err
	}

	if w.db != nil {
		if err := w.db.Rebuild(result.Catalog); err != nil {
			return result, fmt.Errorf("failed to rebuild index: %w", err)
		}
	}

	return result, nil
}

// handleEvent processes a single filesystem event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if !isMarkdown(path) {
		// But watch new directories, within the scan depth bound.
		if event.Op&fsnotify.Create != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				if depth, ok := w.depthOf(path); ok && depth <= catalog.MaxScanDepth {
					w.addWatchRecursive(path, depth)
				}
			}
		}
		return
	}

	if w.shouldIgnore(path) {
		return
	}

	w.logDebug("Event: %s %s", event.Op, path)

	// Create, write, remove, and rename all change the catalog.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
		w.scheduleRebuild()
	}
}

// scheduleRebuild marks a rebuild as pending, resetting the debounce window.
func (w *Watcher) scheduleRebuild() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = true
	w.pendingAt = time.Now()
}

// processDebounced runs rebuilds once the debounce delay has elapsed.
func (w *Watcher) processDebounced(ctx context.Context) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.processPending()
		}
	}
}

func (w *Watcher) processPending() {
	w.mu.Lock()
	ready := w.pending && time.Since(w.pendingAt) >= w.debounceDelay
	if ready {
		w.pending = false
	}
	w.mu.Unlock()

	if !ready {
		return
	}

	result, err := w.Rebuild()
	if w.onRebuild != nil {
		w.onRebuild(result, err)
	}
	if err != nil {
		w.logDebug("Rebuild failed: %v", err)
	} else {
		w.logDebug("Rebuilt: %d posts, %d warnings", result.Catalog.Len(), len(result.Warnings))
	}
}

// addWatchRecursive adds a directory and its subdirectories to the watcher,
// bounded by the catalog scan depth.
func (w *Watcher) addWatchRecursive(root string, rootDepth int) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if !info.IsDir() {
			return nil
		}
		if w.shouldIgnoreDir(path) {
			return filepath.SkipDir
		}
		depth, ok := w.depthOf(path)
		if !ok || depth > catalog.MaxScanDepth {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			w.logDebug("Failed to watch %s: %v", path, err)
		}
		return nil
	})
}

// depthOf returns the directory depth of path relative to the content root.
// The root itself is depth 0.
func (w *Watcher) depthOf(path string) (int, bool) {
	rel, err := filepath.Rel(w.contentRoot, path)
	if err != nil {
		return 0, false
	}
	if rel == "." {
		return 0, true
	}
	return len(strings.Split(rel, string(filepath.Separator))), true
}

func isMarkdown(path string) bool {
	return strings.HasSuffix(path, ".md") || strings.HasSuffix(path, ".mdx")
}

// shouldIgnore returns true if the path should be ignored.
func (w *Watcher) shouldIgnore(path string) bool {
	rel, err := filepath.Rel(w.contentRoot, path)
	if err != nil {
		return false
	}

	parts := strings.Split(rel, string(filepath.Separator))
	for _, part := range parts {
		if strings.HasPrefix(part, ".") || part == "node_modules" {
			return true
		}
	}
	return false
}

// shouldIgnoreDir returns true if the directory should not be watched.
func (w *Watcher) shouldIgnoreDir(path string) bool {
	base := filepath.Base(path)
	if path != w.contentRoot && strings.HasPrefix(base, ".") {
		return true
	}
	return base == index.Dir || base == "node_modules"
}

// logDebug logs a debug message if debug mode is enabled.
func (w *Watcher) logDebug(format string, args ...interface{}) {
	if w.debug {
		fmt.Fprintf(os.Stderr, "[quill-watch] "+format+"\n", args...)
	}
}
