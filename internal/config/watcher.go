package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watcherDebounce = 150 * time.Millisecond

// Watcher reports changes to config.json. Editors often save by writing a
// temp file and renaming it over the original, so the parent directory is
// watched and events are filtered by name.
type Watcher struct {
	watcher    *fsnotify.Watcher
	configPath string
	onChanged  func()
	debounce   time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	ownWrite  []byte
	closed    bool
	closeOnce sync.Once
}

// NewWatcher starts watching the directory holding configPath. The directory
// must exist. onChanged runs on a timer goroutine after events settle.
func NewWatcher(configPath string, onChanged func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher:    fw,
		configPath: filepath.Clean(configPath),
		onChanged:  onChanged,
		debounce:   watcherDebounce,
	}
	if err := fw.Add(filepath.Dir(w.configPath)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return w, nil
}

// Run consumes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.isConfigEvent(event) {
				w.scheduleNotify()
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			// Ignore errors; the watcher keeps running.
		}
	}
}

// Close stops the watcher and any pending notification.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		if w.timer != nil {
			w.timer.Stop()
			w.timer = nil
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

// IgnoreContent marks data as written by this process. A change that leaves
// the file holding exactly data is not reported.
func (w *Watcher) IgnoreContent(data []byte) {
	w.mu.Lock()
	w.ownWrite = append([]byte(nil), data...)
	w.mu.Unlock()
}

func (w *Watcher) isConfigEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.configPath {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

func (w *Watcher) scheduleNotify() {
	if w.onChanged == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.fire)
	} else {
		w.timer.Reset(w.debounce)
	}
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	own := w.ownWrite
	w.mu.Unlock()

	if own != nil {
		if data, err := os.ReadFile(w.configPath); err == nil && bytes.Equal(data, own) {
			return
		}
		w.mu.Lock()
		w.ownWrite = nil
		w.mu.Unlock()
	}
	w.onChanged()
}
