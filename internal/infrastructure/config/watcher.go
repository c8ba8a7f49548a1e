package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the burst of events editors emit on a single save
const debounce = 100 * time.Millisecond

// Watcher reloads one movement config file whenever it changes on disk
type Watcher struct {
	watcher *fsnotify.Watcher
	loader  *Loader
	name    string

	Updates chan *MovementConfig
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches dir and reparses name (relative to dir) on every change
func NewWatcher(dir, name string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		loader:  NewLoader(dir),
		name:    name,
		Updates: make(chan *MovementConfig, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops watching and closes both channels
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Updates)
	defer close(w.Errors)

	// Reload once the file has been quiet for the debounce window
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(w.name) {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			cfg, err := w.loader.LoadMovement(w.name)
			if err != nil {
				w.sendErr(err)
				continue
			}
			select {
			case w.Updates <- cfg:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendErr drops errors nobody is reading instead of blocking the watch loop
func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
