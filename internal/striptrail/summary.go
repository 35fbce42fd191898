package striptrail

import (
	"sync"
	"time"
)

// Result is the outcome of evaluating or applying a trim to one file.
type Result struct {
	// Modified indicates whether the file was (or, in dry-run, would be) changed.
	Modified bool
	// BytesRemoved is the number of trailing bytes stripped.
	BytesRemoved int
}

// Summary holds aggregate totals for one run.
type Summary struct {
	// FilesProcessed counts files that passed all filters.
	FilesProcessed int64
	// FilesModified counts files that were (or would be) rewritten.
	FilesModified int64
	// TotalBytesRemoved is the cumulative count of stripped bytes.
	TotalBytesRemoved int64
	// ErrorCount is the number of files skipped due to I/O errors.
	ErrorCount int64
	// DryRun records which mode produced this summary.
	DryRun bool
	// Elapsed is the total time taken for the run.
	Elapsed time.Duration
}

// Options configures a run.
type Options struct {
	// Path is the directory to process.
	Path string
	// Extensions to include (empty = all). Values are normalized to
	// lowercase with a leading dot.
	Extensions []string
	// Excludes contains substrings; any path containing one is skipped.
	Excludes []string
	// DryRun reports intended changes without writing.
	DryRun bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// collector accumulates the running summary. The counters are guarded by a
// mutex because the progress reporter goroutine reads them while the walk
// runs; the walk itself updates them from a single worker.
type collector struct {
	mu      sync.Mutex
	summary Summary
}

// newCollector creates a collector for the given mode.
func newCollector(dryRun bool) *collector {
	return &collector{summary: Summary{DryRun: dryRun}}
}

func (c *collector) addProcessed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary.FilesProcessed++
}

func (c *collector) addModified(bytesRemoved int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary.FilesModified++
	c.summary.TotalBytesRemoved += int64(bytesRemoved)
}

func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary.ErrorCount++
}

// processed returns the running processed-file count for progress display.
func (c *collector) processed() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.summary.FilesProcessed
}

// finalize produces the final Summary from the collected counters.
func (c *collector) finalize() *Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	summary := c.summary

	return &summary
}
