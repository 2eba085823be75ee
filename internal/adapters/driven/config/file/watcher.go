package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/oops"

	"github.com/custodia-labs/modmenu/internal/logger"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

// Watcher calls a function when the config file changes on disk.
// It watches the parent directory because atomic saves replace the file.
type Watcher struct {
	target   string
	debounce time.Duration
	onChange func()
	fs       *fsnotify.Watcher
}

// NewWatcher starts watching the directory of path. Run must be called to
// deliver changes; Close releases the watch if Run is never called.
func NewWatcher(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, oops.In("watcher").Wrapf(err, "create watcher")
	}

	target := filepath.Clean(path)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		_ = fw.Close()
		return nil, oops.In("watcher").With("dir", filepath.Dir(target)).Wrapf(err, "watch directory")
	}

	return &Watcher{
		target:   target,
		debounce: debounce,
		onChange: onChange,
		fs:       fw,
	}, nil
}

// Run delivers debounced change notifications until ctx is cancelled.
// The underlying watch is closed when Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			logger.Debug("config file event: %s", ev)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error: %v", err)

		case <-fire:
			fire = nil
			w.onChange()
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.target {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
