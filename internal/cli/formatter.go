package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/striptrail/internal/striptrail"
)

// PrintHeader writes the run header.
func PrintHeader(writer io.Writer, directory string, dryRun bool) {
	fmt.Fprintf(writer, "Processing directory: %s\n", directory)

	if dryRun {
		fmt.Fprintln(writer, "DRY RUN MODE - No files will be modified")
	}

	fmt.Fprintln(writer)
}

// PrintModified writes the per-file line for a modified file.
func PrintModified(writer io.Writer, path string, bytesRemoved int, dryRun bool) {
	if dryRun {
		fmt.Fprintf(writer, "WOULD MODIFY: %s (%d bytes)\n", path, bytesRemoved)
	} else {
		fmt.Fprintf(writer, "Modified: %s (%d bytes removed)\n", path, bytesRemoved)
	}
}

// PrintSummary writes the aggregate totals.
func PrintSummary(writer io.Writer, summary *striptrail.Summary) {
	fmt.Fprintln(writer, "\nSummary:")
	fmt.Fprintf(writer, "Files processed: %d\n", summary.FilesProcessed)
	fmt.Fprintf(writer, "Files modified: %d\n", summary.FilesModified)

	if summary.TotalBytesRemoved > 0 {
		fmt.Fprintf(writer, "Total bytes removed: %d (%s)\n",
			summary.TotalBytesRemoved,
			humanize.IBytes(uint64(summary.TotalBytesRemoved))) //nolint:gosec // Count is always positive
	} else {
		fmt.Fprintf(writer, "Total bytes removed: %d\n", summary.TotalBytesRemoved)
	}
}
