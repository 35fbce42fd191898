package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/striptrail/internal/striptrail"
)

// DefaultExcludes contains the default exclusion patterns.
//
//nolint:gochecknoglobals // Config constant
var DefaultExcludes = []string{".git", "__pycache__", "node_modules", ".venv", "venv"}

// NewCommand builds the root command with the given version.
func NewCommand(version string) *cobra.Command {
	var options striptrail.Options

	cmd := &cobra.Command{
		Use:   "striptrail [flags] [directory]",
		Short: "Recursively remove trailing newlines from files",
		Long: heredoc.Doc(`
			striptrail recursively removes trailing newline bytes from files.

			Files are treated as binary: only the trailing run of LF and CR bytes
			is stripped, the rest of the content is left untouched. Hidden files
			and directories are always skipped, as are files with known binary
			extensions (executables, images, archives, office documents).

			Examples:
			  striptrail /path/to/directory
			  striptrail . --extensions .txt,.py,.js
			  striptrail /code --exclude node_modules,__pycache__,.git
			  striptrail . --dry-run
		`),
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				options.Path = args[0]
			} else {
				options.Path = "."
			}

			// An invalid target is fatal before any traversal starts.
			info, err := os.Stat(options.Path)
			if err != nil {
				return fmt.Errorf("directory %q does not exist", options.Path)
			}

			if !info.IsDir() {
				return fmt.Errorf("%q is not a directory", options.Path)
			}

			return logic(options)
		},
	}

	registerFlags(cmd.Flags(), &options)

	return cmd
}

// registerFlags binds the run options to the command's flag set.
func registerFlags(flags *pflag.FlagSet, options *striptrail.Options) {
	flags.StringSliceVarP(
		&options.Extensions,
		"extensions",
		"x",
		nil,
		"File extensions to include (e.g., .txt,.py,.js). Empty means all extensions",
	)
	flags.StringSliceVarP(&options.Excludes, "exclude", "e", DefaultExcludes, "Substrings to exclude from processing")
	flags.BoolVarP(&options.DryRun, "dry-run", "n", false, "Show what would be done without modifying files")

	flags.SortFlags = false
}

// Execute runs the root command, printing any error to the diagnostic
// stream. The cancellation notice is printed where the interrupt is caught,
// so context.Canceled passes through silently.
func Execute(version string) error {
	err := NewCommand(version).Execute()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	return err
}
