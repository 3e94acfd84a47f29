package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"drag-threshold/internal/logger"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceDuration coalesces the burst of events editors produce on save.
const DefaultDebounceDuration = 250 * time.Millisecond

// Debouncer runs only the last callback triggered within its window.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

func NewDebouncer(duration time.Duration) *Debouncer {
	if duration == 0 {
		duration = DefaultDebounceDuration
	}
	return &Debouncer{duration: duration}
}

func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			callback()
		}
	})
}

func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Watcher reloads Settings when the config file changes.
type Watcher struct {
	path      string
	onReload  func(Settings)
	logger    logger.Logger
	debouncer *Debouncer
}

func NewWatcher(path string, log logger.Logger, onReload func(Settings)) *Watcher {
	return &Watcher{
		path:      path,
		onReload:  onReload,
		logger:    log,
		debouncer: NewDebouncer(DefaultDebounceDuration),
	}
}

// Run blocks until ctx is cancelled. The parent directory is watched so
// that editors replacing the file by rename are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer fsw.Close()

	target := filepath.Clean(w.path)
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", target, err)
	}

	w.logger.Info("ConfigWatcher", "watching config", map[string]interface{}{"path": target})

	for {
		select {
		case <-ctx.Done():
			w.debouncer.Cancel()
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.debouncer.Trigger(w.reload)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("ConfigWatcher", err, map[string]interface{}{"path": target})
		}
	}
}

func (w *Watcher) reload() {
	settings, err := Load(w.path)
	if err != nil {
		w.logger.Warning("ConfigWatcher", "config reload failed, keeping previous settings", map[string]interface{}{
			"path":  w.path,
			"error": err.Error(),
		})
		return
	}
	w.onReload(settings)
}
