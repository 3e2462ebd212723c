package preset

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/nurbs-editor/internal/logger"
)

// Watcher reports changes to a single file. The parent directory is
// watched so editors that save by rename are still seen.
//
// The watch goroutine only forwards the path; consumers apply the change
// on their own thread.
type Watcher struct {
	file    string
	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	log     *zap.Logger
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		file:    abs,
		watcher: fw,
		changes: make(chan string, 1),
		done:    make(chan struct{}),
		log:     logger.Named("preset.watch"),
	}
	go w.run()
	w.log.Debug("watching preset", zap.String("path", abs))
	return w, nil
}

// Changes delivers the file path after it was written or replaced.
// Bursts of events collapse into one pending notification.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops watching. Changes is closed once the goroutine exits.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.changes)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.file {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			select {
			case w.changes <- w.file:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
		}
	}
}
