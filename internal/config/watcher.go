package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/leon22heart/dolphin/pkg/log"
)

// Watcher reloads a Store from its settings file whenever the file
// changes on disk. Editors commonly replace files rather than writing
// them in place, so the watch is placed on the containing directory and
// filtered by name.
type Watcher struct {
	store *Store
	path  string

	fsw    *fsnotify.Watcher
	logger log.Logger
	done   chan struct{}
}

// Watch starts watching the settings file at path, reloading store on
// every write or replace. Close must be called to release the watch.
func Watch(store *Store, path string, logger log.Logger) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		store:  store,
		path:   absPath,
		fsw:    fsw,
		logger: logger,
		done:   make(chan struct{}),
	}
	go w.processLoop()

	return w, nil
}

// Close stops the watcher and waits for its event loop to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) processLoop() {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := Load(w.store, w.path); err != nil {
				w.logger.Errorf("reloading settings: %s", err)
				continue
			}
			w.logger.Debugf("settings reloaded from %s", w.path)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("settings watcher: %s", err)
		}
	}
}
