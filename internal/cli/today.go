package cli

import (
	"github.com/spf13/cobra"

	"wordle/internal/session"
)

// NewTodayCommand creates the today command.
func NewTodayCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the board for today's puzzle",
		Long: `Show the board for today's puzzle, or the day given by --date.

Example:
  wordle today
  wordle today --date 2021-06-19 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGame(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer g.Close()
			return formatter(cmd, opts).Success(newBoardView(g.sess, session.NoticeNone))
		},
	}
}
