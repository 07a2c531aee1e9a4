package theme

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gnana997/uistyle/pkg/tokens"
)

// DefaultWatchDebounceMs groups bursts of editor writes into one reload.
const DefaultWatchDebounceMs = 200

// WatchOptions configures a Watcher.
type WatchOptions struct {
	DebounceMs int

	// OnReload is called after every reload attempt with the new theme or the
	// load error. Optional.
	OnReload func(*Theme, error)
}

// Watcher reloads a theme file into a store whenever the file changes on
// disk. The containing directory is watched so editors that replace the file
// by rename are handled.
//
// **Usage:**
//
//	w, err := theme.NewWatcher(path, store, theme.WatchOptions{}, logger)
//	if err != nil {
//	    return err
//	}
//	if err := w.Start(); err != nil {
//	    return err
//	}
//	defer w.Stop()
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	store   *tokens.MemoryStore
	logger  *slog.Logger
	options WatchOptions

	// Debouncing
	timer   *time.Timer
	timerMu sync.Mutex

	// Lifecycle
	stopChan chan struct{}
	started  bool
	stopped  bool
	mu       sync.Mutex
}

// NewWatcher creates a Watcher for the theme file at path.
func NewWatcher(path string, store *tokens.MemoryStore, options WatchOptions, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if options.DebounceMs <= 0 {
		options.DebounceMs = DefaultWatchDebounceMs
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve theme path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		store:    store,
		logger:   logger,
		options:  options,
		stopChan: make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return fmt.Errorf("watcher already stopped")
	}
	if w.started {
		return fmt.Errorf("watcher already started")
	}

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.started = true

	w.logger.Info("Theme watcher started", "path", w.path)
	go w.eventLoop()
	return nil
}

// Stop stops the watcher. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.timerMu.Unlock()

	err := w.watcher.Close()
	w.logger.Info("Theme watcher stopped", "path", w.path)
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
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
			w.logger.Error("Theme watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	w.logger.Debug("Theme file event", "op", event.Op.String(), "file", event.Name)

	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
		w.debounceReload()
	}
}

func (w *Watcher) debounceReload() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(time.Duration(w.options.DebounceMs)*time.Millisecond, func() {
		w.timerMu.Lock()
		w.timer = nil
		w.timerMu.Unlock()
		w.Reload()
	})
}

// Reload reads the theme file and replaces the store's token sets. An
// invalid file leaves the store untouched.
func (w *Watcher) Reload() (*Theme, error) {
	t, _, err := LoadFromFile(w.path)
	if err != nil {
		w.logger.Warn("Theme reload failed, keeping current tokens", "path", w.path, "error", err)
	} else {
		t.Apply(w.store)
		w.logger.Info("Theme reloaded", "path", w.path, "name", t.Name, "tokens", len(t.Tokens))
	}

	if w.options.OnReload != nil {
		w.options.OnReload(t, err)
	}
	return t, err
}
