package sim

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches the burst of events editors emit for one save.
const DefaultDebounce = 200 * time.Millisecond

// Watch runs the script at path once, then again after every change to the
// file, passing each outcome to fn. It blocks until ctx is done and returns
// nil on cancellation.
//
// The parent directory is watched rather than the file so that editors that
// save by renaming a temp file over the original keep triggering reruns.
func (r *Runner) Watch(ctx context.Context, path string, debounce time.Duration, fn func(*Report, error)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	log := r.logger().With(zap.String("path", abs))
	runOnce := func() {
		s, err := LoadScript(abs)
		if err != nil {
			fn(nil, err)
			return
		}
		fn(r.Run(ctx, s))
	}
	runOnce()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			log.Debug("script changed", zap.Stringer("op", ev.Op))
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			runOnce()
		}
	}
}
