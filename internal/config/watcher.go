package config

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when operations are attempted on a
// closed watcher.
var ErrWatcherClosed = errors.New("config: watcher is closed")

// Watcher watches a configuration file and invokes a callback when it
// changes. Editors typically replace files rather than write them in
// place, so the watcher monitors the parent directory and filters by
// name, with a short debounce to coalesce bursts of events.
type Watcher struct {
	mu sync.Mutex

	watcher  *fsnotify.Watcher
	path     string
	onChange func()
	debounce time.Duration

	closed  bool
	closeCh chan struct{}
	doneWg  sync.WaitGroup
}

// NewWatcher starts watching path, calling onChange (from the
// watcher's own goroutine) after each change settles.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		path:     absPath,
		onChange: onChange,
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}

	w.doneWg.Add(1)
	go w.loop()

	return w, nil
}

func (w *Watcher) loop() {
	defer w.doneWg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.onChange()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable here; the next poll of
			// the config file will surface real problems.

		case <-w.closeCh:
			return
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.doneWg.Wait()
	return err
}
