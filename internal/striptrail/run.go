package striptrail

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ErrNotDirectory indicates the target path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Hooks carries the callbacks a run reports through. Any field may be nil.
type Hooks struct {
	// FileModified is called once per modified (or would-be modified) file,
	// in traversal order.
	FileModified func(path string, bytesRemoved int)
	// FileError is called when a file cannot be read or written. The walk
	// continues afterwards.
	FileError func(path string, err error)
	// Progress receives the running processed-file count on an interval.
	Progress func(files int64)
}

// startProgressReporter invokes hook(files) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.processed())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run walks the directory tree at opt.Path and strips trailing newline bytes
// from every qualifying file, or only reports what would be stripped when
// opt.DryRun is set.
//
// Directories whose name starts with a dot are pruned entirely (the root
// itself is exempt) and hidden files are skipped. Files rejected by the
// extension allow-list, the exclude substrings, or the built-in binary
// deny-list are skipped silently. A single file's read or write failure is
// reported through hooks.FileError and never aborts the walk.
//
// Files are processed one at a time: each is fully read, evaluated, and
// rewritten before the next is considered. The walk can be cancelled via
// ctx, in which case Run returns context.Canceled.
func Run(ctx context.Context, opt Options, hooks Hooks) (*Summary, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	// validate path exists and is accessible
	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q: %w", opt.Path, ErrNotDirectory)
	}

	filter := NewFilter(opt.Extensions, opt.Excludes)
	collector := newCollector(opt.DryRun)

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, hooks.Progress, opt.ProgressInterval)

	start := time.Now()

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: 1,     // Sequential: one file at a time, in full
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			collector.addError()

			if hooks.FileError != nil {
				hooks.FileError(path, err)
			}

			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		hidden := strings.HasPrefix(d.Name(), ".")

		if d.IsDir() {
			// Prune hidden directories wholesale. The root is exempt so
			// that explicitly targeting e.g. ".cache" still works.
			if hidden && path != opt.Path {
				return filepath.SkipDir
			}

			return nil
		}

		if hidden || !d.Type().IsRegular() {
			return nil
		}

		if !filter.Qualifies(path) {
			return nil
		}

		collector.addProcessed()

		result, err := Process(path, opt.DryRun)
		if err != nil {
			collector.addError()

			if hooks.FileError != nil {
				hooks.FileError(path, err)
			}

			return nil
		}

		if result.Modified {
			collector.addModified(result.BytesRemoved)

			if hooks.FileModified != nil {
				hooks.FileModified(path, result.BytesRemoved)
			}
		}

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	summary := collector.finalize()
	summary.Elapsed = time.Since(start)

	return summary, nil
}
