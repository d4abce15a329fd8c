// Package cli implements the wordle command line: the daily puzzle played
// against one locally stored state blob.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"wordle/internal/calendar"
	"wordle/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	Date      string
	Store     string
	StatePath string
	Answers   string
	Allowed   string
	Timezone  string

	// Clock overrides the wall clock (for testing). Nil means the system clock.
	Clock calendar.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the wordle CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordle",
		Short: "xdOS Wordle - the daily five-letter word puzzle",
		Long: `Play the daily five-letter word puzzle from the terminal.

Everyone gets the same word on the same calendar day. Progress and
statistics are kept in a local state store and survive restarts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			log.SetFlags(0)
			if opts.Verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log diagnostics to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Date, "date", "", "play another day (YYYY-MM-DD); invalid values fall back to today")
	cmd.PersistentFlags().StringVar(&opts.Store, "store", store.BackendFile, "state backend (file|badger|sqlite|memory)")
	cmd.PersistentFlags().StringVar(&opts.StatePath, "state", defaultStatePath(), "state directory or database path")
	cmd.PersistentFlags().StringVar(&opts.Answers, "answers", "data/answers.json", "answer list (JSON or YAML)")
	cmd.PersistentFlags().StringVar(&opts.Allowed, "allowed", "data/allowed_guesses.txt", "allowed guesses, one per line")
	cmd.PersistentFlags().StringVar(&opts.Timezone, "tz", calendar.DefaultZone, "time zone that decides the current day")

	cmd.AddCommand(NewTodayCommand(opts))
	cmd.AddCommand(NewGuessCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewShareCommand(opts))
	cmd.AddCommand(NewPlayCommand(opts))

	return cmd
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".wordle"
	}
	return filepath.Join(dir, "xdos-wordle")
}

func formatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}
