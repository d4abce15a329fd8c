package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordle/internal/engine"
	"wordle/internal/session"
	"wordle/internal/share"
)

// NewPlayCommand creates the play command.
func NewPlayCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively, one guess per line",
		Long: `Read guesses from stdin, one per line, until the game ends or input
runs out. Progress is saved after every accepted guess, so an interrupted
game resumes where it stopped.

With --format json only the final board is written.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := openGame(ctx, opts)
			if err != nil {
				return err
			}
			defer g.Close()

			out := cmd.OutOrStdout()
			text := opts.Format == "text"
			if text {
				fmt.Fprintln(out, newBoardView(g.sess, session.NoticeNone))
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for !g.sess.Over() {
				if text {
					fmt.Fprintf(out, "Guess %d/%d: ", len(g.sess.Guesses)+1, engine.MaxGuesses)
				}
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				notice, err := g.submit(ctx, line)
				if err != nil {
					return err
				}
				if !text {
					continue
				}
				if notice.Rejected() {
					fmt.Fprintln(out, notice)
					continue
				}
				evals := g.sess.Evaluations()
				last := evals[len(evals)-1]
				fmt.Fprintln(out, strings.ToUpper(last.Guess)+" "+share.Row(last))
			}
			if err := scanner.Err(); err != nil {
				return WrapExitError(ExitCommandError, "failed to read input", err)
			}

			if !text {
				return formatter(cmd, opts).Success(newBoardView(g.sess, session.NoticeNone))
			}
			fmt.Fprintln(out)
			if !g.sess.Over() {
				return nil
			}
			fmt.Fprintln(out, newBoardView(g.sess, session.NoticeNone))
			if shareText, ok := g.sess.ShareText(); ok {
				fmt.Fprintln(out)
				fmt.Fprintln(out, shareText)
			}
			return nil
		},
	}
}
