// Package appmode provides the two ways to run the app: one-shot CLI search and long-running search-node
package appmode

import (
	"errors"
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/spf13/cobra"
)

// NewSearchCommand returns the root command: minigrep <query> <file_path>.
// Flag parsing is disabled, every argument is positional, so a query like "-v" is searched as is.
func NewSearchCommand(lookup parser.EnvLookup, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "minigrep <query> <file_path>",
		Short: "Print lines of the file containing the query (set IGNORE_CASE to ignore case)",
		Args:  cobra.ArbitraryArgs,

		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,

		RunE: func(cmd *cobra.Command, args []string) error {
			rawArgs := append([]string{cmd.Name()}, args...)

			cfg, err := parser.BuildConfig(rawArgs, lookup)
			if err != nil {
				return err
			}

			return processor.Run(cfg, stdout)
		},
	}
}

// Describe turns an error returned by the search command into a diagnostic for stderr
func Describe(err error) string {
	var argErr *model.ArgumentError
	if errors.As(err, &argErr) {
		return "Problem parsing arguments: " + err.Error()
	}
	return "Application error: " + err.Error()
}
