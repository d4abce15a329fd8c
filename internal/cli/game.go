package cli

import (
	"context"
	"errors"
	"log"

	"wordle/internal/calendar"
	"wordle/internal/session"
	"wordle/internal/stats"
	"wordle/internal/store"
	"wordle/internal/vocab"
)

// game is an open store plus the session for the requested day.
type game struct {
	store      store.Store
	sess       session.Session
	overridden bool
}

func openStore(opts *RootOptions) (store.Store, error) {
	st, err := store.Open(opts.Store, opts.StatePath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open state store", err)
	}
	return st, nil
}

// loadState never fails: unreadable state is replaced by the default.
func loadState(ctx context.Context, st store.Store) stats.State {
	state, err := store.LoadState(ctx, st, stats.StorageKey)
	if err != nil && !errors.Is(err, stats.ErrNoData) {
		log.Printf("[WARN] Starting from a fresh state: %v", err)
	}
	return state
}

func openGame(ctx context.Context, opts *RootOptions) (*game, error) {
	loc, err := calendar.LoadLocation(opts.Timezone)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid time zone", err)
	}
	v, err := vocab.Load(opts.Answers, opts.Allowed)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load word lists", err)
	}
	st, err := openStore(opts)
	if err != nil {
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	date, overridden := calendar.Resolve(opts.Date, clock, loc)
	if opts.Date != "" && !overridden {
		log.Printf("[WARN] Ignoring invalid date %q, playing %s", opts.Date, date)
	}

	sess, err := session.Start(loadState(ctx, st), v, date)
	if err != nil {
		_ = st.Close()
		return nil, WrapExitError(ExitCommandError, "failed to start puzzle", err)
	}
	log.Printf("[INFO] Playing %s (#%d) with %d guesses made", date, sess.Puzzle.Index, len(sess.Guesses))
	return &game{store: st, sess: sess, overridden: overridden}, nil
}

// submit applies one guess and saves the state when it was accepted.
func (g *game) submit(ctx context.Context, word string) (session.Notice, error) {
	next, notice := session.SubmitGuess(g.sess, word)
	g.sess = next
	if notice.Rejected() {
		return notice, nil
	}
	if err := store.SaveState(ctx, g.store, stats.StorageKey, next.State); err != nil {
		return notice, WrapExitError(ExitCommandError, "failed to save progress", err)
	}
	return notice, nil
}

func (g *game) Close() error {
	return g.store.Close()
}
