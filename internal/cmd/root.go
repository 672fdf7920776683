package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/grepr/internal/config"
	"github.com/harrison/grepr/internal/display"
	"github.com/harrison/grepr/internal/search"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for grepr
func NewRootCommand() *cobra.Command {
	var opts config.Options

	cmd := &cobra.Command{
		Use:   "grepr <pattern> [file...]",
		Short: "Search files for lines matching a pattern",
		Long: `grepr searches the named files for lines matching a regular expression
and prints them with the matched text highlighted.

Files default to standard input ("-"). Directories are searched when
--recursive is set; without it a directory argument is reported as an
error and skipped. Per-file problems go to standard error and never stop
the remaining inputs.

Examples:
  grepr fox story.txt              # matching lines from one file
  grepr -i fox a.txt b.txt         # case-insensitive, lines prefixed per file
  grepr -c fox *.txt               # match counts instead of lines
  grepr -v fox story.txt           # lines that do NOT match
  grepr -r fox ./docs              # every regular file under ./docs
  cat story.txt | grepr fox        # read standard input`,
		Version: Version,
		Args:    cobra.MinimumNArgs(1),
		// The invalid-pattern message is the contract; no usage dump or
		// "Error:" wrapper around it.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(args[0], args[1:], opts)
			if err != nil {
				return err
			}

			highlight := display.NewHighlighter(isatty.IsTerminal(os.Stdout.Fd()))
			runner := search.NewRunner(cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin(), highlight)
			runner.Run(cfg)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Insensitive, "insensitive", "i", false, "Case-insensitive matching")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "Search directories recursively")
	cmd.Flags().BoolVarP(&opts.Count, "count", "c", false, "Print the number of matching lines per file")
	cmd.Flags().BoolVarP(&opts.InvertMatch, "invert-match", "v", false, "Select lines that do not match")

	return cmd
}
