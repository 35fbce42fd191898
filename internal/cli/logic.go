package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/striptrail/internal/striptrail"
)

func logic(options striptrail.Options) error {
	enableProgress := isatty.IsTerminal(os.Stderr.Fd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Simple progress callback that prints directly to stderr
	var progressHook func(files int64)

	clearProgress := func() {}

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files int64) {
			fmt.Fprintf(os.Stderr, "\r\033[2KScanning… %d files\r", files)
		}

		clearProgress = func() {
			fmt.Fprint(os.Stderr, "\r\033[2K\r")
		}
	}

	PrintHeader(os.Stdout, options.Path, options.DryRun)

	hooks := striptrail.Hooks{
		FileModified: func(path string, bytesRemoved int) {
			clearProgress()
			PrintModified(os.Stdout, path, bytesRemoved, options.DryRun)
		},
		FileError: func(path string, err error) {
			clearProgress()
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
		},
		Progress: progressHook,
	}

	summary, err := striptrail.Run(ctx, options, hooks)

	// Clear the status line
	clearProgress()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Operation cancelled by user")
		}

		return err
	}

	PrintSummary(os.Stdout, summary)

	return nil
}
