package assets

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/scenery/internal/logger"
)

// DefaultDebounce groups the burst of events an editor produces when it
// saves a file.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a fixed set of files. Directories are watched
// rather than the files themselves so that editors which save by renaming
// a temporary file are still noticed.
type Watcher struct {
	fs       *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	log      *zap.Logger

	changes chan []string
	done    chan struct{}
}

// NewWatcher starts watching files. Changes are reported after no further
// event arrived for debounce.
func NewWatcher(files []string, debounce time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fs:       fs,
		files:    make(map[string]bool),
		debounce: debounce,
		log:      logger.Named("watch"),
		changes:  make(chan []string, 1),
		done:     make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fs.Close()
			return nil, fmt.Errorf("resolving %s: %w", f, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	w.log.Debug("watching files", zap.Int("files", len(w.files)), zap.Int("dirs", len(dirs)))
	go w.loop()
	return w, nil
}

// Changes delivers the sorted absolute paths changed since the last
// delivery. A batch not yet received is replaced by nothing newer; the
// receiver is expected to reload everything on any change.
func (w *Watcher) Changes() <-chan []string {
	return w.changes
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

func (w *Watcher) loop() {
	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-w.done:
			timer.Stop()
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			pending[name] = true
			timer.Reset(w.debounce)

		case <-timer.C:
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			sort.Strings(names)
			clear(pending)

			select {
			case w.changes <- names:
			default:
				w.log.Debug("change already pending", zap.Strings("files", names))
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}
