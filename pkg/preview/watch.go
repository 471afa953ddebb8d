package preview

import (
	"context"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/go-drift/skeleton/pkg/config"
)

// DefaultReloadInterval is the minimum time between two reloads of a
// watched file.
const DefaultReloadInterval = 250 * time.Millisecond

// Load reads and resolves the config at path.
func Load(path string) ReloadMsg {
	f, err := config.Load(path)
	if err != nil {
		return ReloadMsg{Err: err}
	}
	r, err := config.Resolve(f)
	return ReloadMsg{Resolved: r, Err: err}
}

// Watcher reloads a config file whenever it is written and delivers the
// result as a ReloadMsg.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	limiter *rate.Limiter
}

// NewWatcher watches the directory holding path, so files replaced by
// editors are still seen.
func NewWatcher(path string, interval time.Duration) (*Watcher, error) {
	if interval <= 0 {
		interval = DefaultReloadInterval
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{
		path:    path,
		watcher: w,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}, nil
}

// Run delivers reloads to send until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, send func(tea.Msg)) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Bursts of writes collapse into spaced reloads of the latest content.
			if err := w.limiter.Wait(ctx); err != nil {
				return nil
			}
			send(Load(w.path))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			send(ReloadMsg{Err: err})
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
