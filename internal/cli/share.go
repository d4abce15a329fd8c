package cli

import (
	"github.com/spf13/cobra"
)

// NewShareCommand creates the share command.
func NewShareCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "share",
		Short: "Print the share text for a finished game",
		Long: `Print the spoiler-free result grid for a finished game.

Example:
  wordle share | pbcopy`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGame(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer g.Close()

			text, ok := g.sess.ShareText()
			if !ok {
				return NewExitError(ExitFailure, "game is still in progress")
			}
			return formatter(cmd, opts).Success(ShareView{Date: g.sess.Date(), Text: text})
		},
	}
}
