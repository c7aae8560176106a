package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	logger  *log.Logger
	updates chan SurvivorConfig
}

// NewWatcher starts watching path. The parent directory is watched rather
// than the file itself so that editors which replace files on save are
// picked up too.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:    abs,
		fs:      fsWatch,
		logger:  logger,
		updates: make(chan SurvivorConfig, 1),
	}, nil
}

// Updates delivers every successfully reloaded config. Only the most recent
// unread config is kept.
func (w *Watcher) Updates() <-chan SurvivorConfig {
	return w.updates
}

// Run processes file events until ctx is canceled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.updates)

	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.reload()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("config watcher error", "error", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// reload loads the file and publishes it, replacing any unread update.
func (w *Watcher) reload() {
	// Truncate-then-write saves briefly expose an empty file.
	if fi, err := os.Stat(w.path); err != nil || fi.Size() == 0 {
		return
	}

	cfg, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("config reload failed, keeping previous values", "path", w.path, "error", err)
		return
	}

	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.logger.Info("config reloaded", "path", w.path)
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
