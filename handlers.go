package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wordle/internal/calendar"
	"wordle/internal/engine"
	"wordle/internal/session"
)

// puzzleHandler returns the player's board for today or the ?date= override.
func (app *App) puzzleHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	app.SessionMutex.RLock()
	s, overridden, err := app.startSession(c, sessionID)
	app.SessionMutex.RUnlock()
	if err != nil {
		logRequestWarn(c.Request.Context(), "Failed to start puzzle: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorPuzzleUnavailable})
		return
	}
	c.JSON(http.StatusOK, newPuzzleResponse(s, overridden, session.NoticeNone))
}

// guessHandler submits one guess. Rejected guesses still return 200 with the
// unchanged board and a notice for the player.
func (app *App) guessHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	var req GuessRequest
	if err := c.ShouldBind(&req); err != nil {
		logRequestWarn(ctx, "Bad guess request for session %s: %v", sessionID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidRequest})
		return
	}

	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()

	s, overridden, err := app.startSession(c, sessionID)
	if err != nil {
		logRequestWarn(ctx, "Failed to start puzzle: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorPuzzleUnavailable})
		return
	}

	next, notice := session.SubmitGuess(s, req.Guess)
	recordGuess(notice)
	logRequestInfo(ctx, "Session %s guessed %q on %s (attempt %d/%d): %q",
		sessionID, req.Guess, next.Date(), len(next.Guesses), engine.MaxGuesses, notice)

	if !notice.Rejected() {
		if err := app.saveState(ctx, sessionID, next.State); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorStateNotSaved})
			return
		}
	}
	c.JSON(http.StatusOK, newPuzzleResponse(next, overridden, notice))
}

// statsHandler returns the cumulative statistics.
func (app *App) statsHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	app.SessionMutex.RLock()
	st := app.loadState(c.Request.Context(), sessionID)
	app.SessionMutex.RUnlock()

	c.JSON(http.StatusOK, StatsResponse{Statistics: st.Stats, WinRate: st.Stats.WinRate()})
}

// shareHandler returns the share text for a finished game.
func (app *App) shareHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	app.SessionMutex.RLock()
	s, _, err := app.startSession(c, sessionID)
	app.SessionMutex.RUnlock()
	if err != nil {
		logRequestWarn(c.Request.Context(), "Failed to start puzzle: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorPuzzleUnavailable})
		return
	}

	text, ok := s.ShareText()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": ErrorGameInProgress})
		return
	}
	sharesTotal.Inc()
	c.JSON(http.StatusOK, ShareResponse{Date: s.Date(), Text: text})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"env":             map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"answers_loaded":  app.Vocab.Size(),
		"allowed_guesses": len(app.Vocab.Allowed),
		"store":           app.StoreBackend,
		"today":           calendar.Today(app.Clock, app.Location),
		"uptime":          formatUptime(uptime),
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

func newPuzzleResponse(s session.Session, overridden bool, notice session.Notice) PuzzleResponse {
	resp := PuzzleResponse{
		Date:         s.Date(),
		Index:        s.Puzzle.Index,
		DateOverride: overridden,
		MaxGuesses:   engine.MaxGuesses,
		Guesses:      s.Guesses,
		Evaluations:  s.Evaluations(),
		Keyboard:     s.Keyboard(),
		Over:         s.Over(),
		Won:          s.Won(),
		Notice:       notice,
	}
	if resp.Over {
		resp.Answer = s.Puzzle.Answer
	}
	return resp
}
