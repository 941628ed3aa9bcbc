package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce groups bursts of file events into one change notification.
const debounce = 100 * time.Millisecond

// Watch calls onChange whenever source files under the configured paths, or
// any of the extra files, change. Events arriving within a short window are
// delivered together. Watch blocks until ctx is done.
func (e *Engine) Watch(ctx context.Context, extra []string, onChange func(changed []string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range e.paths {
		if err := e.addWatch(watcher, root); err != nil {
			return err
		}
	}

	watchedExtra := make(map[string]bool, len(extra))
	for _, path := range extra {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("error watching %s: %w", path, err)
		}
		watchedExtra[filepath.Clean(path)] = true
	}

	var (
		pending []string
		fire    <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && !e.isSkipped(event.Name) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := e.addWatch(watcher, event.Name); err != nil {
						e.logger.Warn("failed to watch new directory", zap.String("path", event.Name), zap.Error(err))
					}
					// files written before the watch took effect raise no events
					found, err := e.walk(ctx, event.Name, nil)
					if err != nil {
						e.logger.Warn("failed to scan new directory", zap.String("path", event.Name), zap.Error(err))
					}
					if len(found) > 0 {
						pending = append(pending, found...)
						fire = time.After(debounce)
					}
					continue
				}
			}
			if !e.relevant(event, watchedExtra) {
				continue
			}
			pending = append(pending, event.Name)
			fire = time.After(debounce)
		case <-fire:
			fire = nil
			changed := pending
			pending = nil
			slices.Sort(changed)
			changed = slices.Compact(changed)
			e.logger.Debug("change detected", zap.Strings("files", changed))
			onChange(changed)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (e *Engine) relevant(event fsnotify.Event, extra map[string]bool) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(event.Name)
	if extra[name] {
		return true
	}
	return !e.isSkipped(name) && hasDesiredExtension(name)
}

// addWatch watches root and every directory beneath it that is not skipped.
func (e *Engine) addWatch(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", root, err)
	}
	if !info.IsDir() {
		return watcher.Add(root)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if e.isSkipped(path) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}
	return nil
}
