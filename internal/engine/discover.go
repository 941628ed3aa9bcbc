package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"github.com/gnolang/refit/config"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

var desiredExtensions = map[string]bool{
	".php": true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}

// Discover returns the source files the engine would process: every .php
// file under the configured paths that is not skipped. The result is sorted
// and free of duplicates.
func (e *Engine) Discover(ctx context.Context) ([]string, error) {
	if len(e.paths) == 0 {
		return nil, fmt.Errorf("nothing to discover: %w", config.ErrNoPaths)
	}

	var bar *progressbar.ProgressBar
	if e.progress != nil {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(e.progress),
			progressbar.OptionSetDescription("discovering"),
			progressbar.OptionShowCount(),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish())
		defer bar.Finish()
	}

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		files []string
		errs  []error
	)

	// limit the number of workers
	sem := make(chan struct{}, runtime.NumCPU())

	for _, root := range e.paths {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(root string) {
			defer wg.Done()
			defer func() { <-sem }()

			found, err := e.walk(ctx, root, bar)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				e.logger.Error("Error discovering files", zap.String("path", root), zap.Error(err))
				errs = append(errs, err)
				return
			}
			files = append(files, found...)
		}(root)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	slices.Sort(files)
	files = slices.Compact(files)

	e.logger.Debug("discovery finished", zap.Int("files", len(files)))
	return files, nil
}

func (e *Engine) walk(ctx context.Context, root string, bar *progressbar.ProgressBar) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", root, err)
	}

	if !info.IsDir() {
		if hasDesiredExtension(root) && !e.isSkipped(root) {
			addProgress(bar)
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.isSkipped(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && hasDesiredExtension(path) {
			files = append(files, path)
			addProgress(bar)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", root, err)
	}
	return files, nil
}

func addProgress(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Add(1)
	}
}
