package main

import (
	"context"
	"errors"

	"wordle/internal/stats"
	"wordle/internal/store"
)

// loadState reads a session's saved state. A missing, unreadable or corrupt
// blob yields a fresh state; the player is never blocked by bad data.
func (app *App) loadState(ctx context.Context, sessionID string) stats.State {
	st, err := store.LoadState(ctx, app.Store, sessionID)
	switch {
	case err == nil:
		logRequestInfo(ctx, "Loaded state for session %s (%d games)", sessionID, len(st.Games))
	case errors.Is(err, stats.ErrNoData):
		logRequestInfo(ctx, "No saved state for session %s, starting fresh", sessionID)
	default:
		stateLoadFailuresTotal.WithLabelValues(loadFailureReason(err)).Inc()
		logRequestWarn(ctx, "Discarding saved state for session %s: %v", sessionID, err)
	}
	return st
}

// saveState replaces the session's saved state.
func (app *App) saveState(ctx context.Context, sessionID string, st stats.State) error {
	if err := store.SaveState(ctx, app.Store, sessionID, st); err != nil {
		logRequestWarn(ctx, "Failed to save state for session %s: %v", sessionID, err)
		return err
	}
	logRequestInfo(ctx, "Saved state for session %s", sessionID)
	return nil
}
