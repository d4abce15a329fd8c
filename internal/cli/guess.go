package cli

import (
	"github.com/spf13/cobra"
)

// NewGuessCommand creates the guess command.
func NewGuessCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "guess <word>",
		Short: "Submit one guess",
		Long: `Submit one guess for today's puzzle and print the updated board.

A rejected guess (wrong length, not in the word list, repeated, or the
game is already over) leaves the saved state untouched and exits with
status 1.

Example:
  wordle guess crane`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := openGame(ctx, opts)
			if err != nil {
				return err
			}
			defer g.Close()

			notice, err := g.submit(ctx, args[0])
			if err != nil {
				return err
			}
			view := newBoardView(g.sess, notice)
			out := formatter(cmd, opts)
			if notice.Rejected() {
				if err := out.Failure(view, string(notice)); err != nil {
					return err
				}
				return NewExitError(ExitFailure, string(notice))
			}
			return out.Success(view)
		},
	}
}
