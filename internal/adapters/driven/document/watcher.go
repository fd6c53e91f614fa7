package document

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/pacer/internal/core/ports/driven"
	"github.com/custodia-labs/pacer/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.DocumentWatcher = (*Watcher)(nil)

// Default reload throttle.
const (
	DefaultReloadsPerSecond = 2
	DefaultReloadBurst      = 1
)

// Watcher reports writes to a single file.
//
// The containing directory is watched rather than the file so that editors
// which save by renaming a temporary file over the original keep working.
// Bursts are throttled: an event arriving faster than the limit is folded
// into one trailing notification.
type Watcher struct {
	limit rate.Limit
	burst int
}

// NewWatcher creates a watcher with the default throttle.
func NewWatcher() *Watcher {
	return &Watcher{
		limit: rate.Limit(DefaultReloadsPerSecond),
		burst: DefaultReloadBurst,
	}
}

// Watch starts watching path. The returned channel receives a value after
// each change and is closed when ctx is done.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	abs, err := filepath.Abs(ResolvePath(path))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer fsw.Close()
		w.run(ctx, abs, fsw.Events, fsw.Errors, changes)
	}()

	logger.Debug("watching %s", abs)
	return changes, nil
}

// run forwards relevant events to changes until ctx is done or events closes.
func (w *Watcher) run(ctx context.Context, target string, events <-chan fsnotify.Event, errs <-chan error, changes chan struct{}) {
	defer close(changes)

	limiter := rate.NewLimiter(w.limit, w.burst)
	var trailing *time.Timer
	var trailingC <-chan time.Time
	defer func() {
		if trailing != nil {
			trailing.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if !isChange(target, event) {
				continue
			}
			if limiter.Allow() {
				notify(changes)
				continue
			}
			if trailing == nil {
				logger.Debug("throttling reload of %s", target)
				trailing = time.NewTimer(w.interval())
				trailingC = trailing.C
			}

		case <-trailingC:
			trailing, trailingC = nil, nil
			notify(changes)

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn("watch %s: %v", target, err)
		}
	}
}

func (w *Watcher) interval() time.Duration {
	if w.limit <= 0 {
		return time.Second
	}
	return time.Duration(float64(time.Second) / float64(w.limit))
}

// isChange reports whether event modified target.
// Chmod, Remove and Rename alone leave content to reload untouched.
func isChange(target string, event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// notify sends without blocking. A pending notification already covers
// this change.
func notify(changes chan struct{}) {
	select {
	case changes <- struct{}{}:
	default:
	}
}
