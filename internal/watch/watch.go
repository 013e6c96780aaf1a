// Package watch reports debounced changes to specification files.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config configures the watcher
type Config struct {
	// Dirs are the directories to watch. Subdirectories are watched too.
	Dirs []string

	// Match reports whether a changed file is relevant. Nil matches
	// specification files by extension.
	Match func(path string) bool

	// DebounceDelay is how long to collect changes before reporting them
	DebounceDelay time.Duration

	Logger *slog.Logger
}

// Batch is a set of files that changed within one debounce window.
type Batch struct {
	// Changed holds created or modified files, sorted.
	Changed []string

	// Removed holds deleted or renamed files, sorted.
	Removed []string
}

// Empty reports whether the batch carries no change.
func (b Batch) Empty() bool {
	return len(b.Changed) == 0 && len(b.Removed) == 0
}

// Watcher watches specification files and emits debounced batches
type Watcher struct {
	config  Config
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op // path → most recent operation

	// Content hashes of reported files, so rewrites without changes are ignored.
	hashMu sync.Mutex
	hashes map[string]string

	batches chan Batch
}

// New creates a watcher. Call Start to begin watching.
func New(config Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.DebounceDelay <= 0 {
		config.DebounceDelay = 200 * time.Millisecond
	}
	if config.Match == nil {
		config.Match = IsSpecFile
	}

	return &Watcher{
		config:  config,
		watcher: fsw,
		logger:  config.Logger,
		pending: make(map[string]fsnotify.Op),
		hashes:  make(map[string]string),
		batches: make(chan Batch, 16),
	}, nil
}

// IsSpecFile reports whether path has a specification file extension.
func IsSpecFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Batches returns the channel of debounced changes. It is closed when the
// watcher stops.
func (w *Watcher) Batches() <-chan Batch {
	return w.batches
}

// Start adds the configured directories and processes events until ctx is
// done. Batches is closed on return.
func (w *Watcher) Start(ctx context.Context) error {
	for _, dir := range w.config.Dirs {
		if err := w.addRecursive(dir); err != nil {
			w.watcher.Close()
			close(w.batches)
			return err
		}
	}

	w.logger.Info("Watching specification files",
		"dirs", w.config.Dirs,
		"debounce", w.config.DebounceDelay)

	go func() {
		defer close(w.batches)
		defer w.watcher.Close()
		w.run(ctx)
	}()
	return nil
}

// Seed records the current content of files so an unchanged rewrite is not
// reported.
func (w *Watcher) Seed(paths ...string) {
	for _, p := range paths {
		if hash, err := fileHash(p); err == nil {
			w.setHash(p, hash)
		}
	}
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skipDir(path) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory", "path", path, "error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}
		return nil
	})
}

func skipDir(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

func (w *Watcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			if batch := w.flush(); !batch.Empty() {
				w.send(batch)
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if !w.config.Match(path) {
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() && !skipDir(path) {
				if err := w.addRecursive(path); err != nil {
					w.logger.Warn("Failed to watch new directory", "path", path, "error", err)
				}
			}
		}
		return
	}
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Specification change detected", "path", path, "op", event.Op.String())
}

// flush drains pending changes into a batch.
func (w *Watcher) flush() Batch {
	w.pendingMu.Lock()
	pending := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	var batch Batch
	for path, op := range pending {
		if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
			w.deleteHash(path)
			batch.Removed = append(batch.Removed, path)
			continue
		}

		hash, err := fileHash(path)
		if os.IsNotExist(err) {
			w.deleteHash(path)
			batch.Removed = append(batch.Removed, path)
			continue
		}
		if err != nil {
			w.logger.Warn("Failed to read changed file", "path", path, "error", err)
			batch.Changed = append(batch.Changed, path)
			continue
		}

		if old, ok := w.hash(path); ok && old == hash {
			continue
		}
		w.setHash(path, hash)
		batch.Changed = append(batch.Changed, path)
	}

	slices.Sort(batch.Changed)
	slices.Sort(batch.Removed)
	return batch
}

func (w *Watcher) send(batch Batch) {
	select {
	case w.batches <- batch:
		w.logger.Debug("Sent change batch",
			"changed", len(batch.Changed),
			"removed", len(batch.Removed))
	default:
		w.logger.Warn("Batch channel full, dropping batch",
			"changed", batch.Changed,
			"removed", batch.Removed)
	}
}

func (w *Watcher) hash(path string) (string, bool) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	h, ok := w.hashes[path]
	return h, ok
}

func (w *Watcher) setHash(path, hash string) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	w.hashes[path] = hash
}

func (w *Watcher) deleteHash(path string) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	delete(w.hashes, path)
}

func fileHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
