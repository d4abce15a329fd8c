package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wordle/internal/calendar"
	"wordle/internal/session"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new
// one. Only UUIDs are accepted since the ID doubles as the storage key.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err == nil {
		if id, perr := uuid.Parse(sessionID); perr == nil {
			return id.String()
		}
		logRequestWarn(c.Request.Context(), "Rejecting malformed session cookie %q", sessionID)
	}
	sessionID = uuid.NewString()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", app.IsProduction, true)
	logRequestInfo(c.Request.Context(), "Created new session: %s", sessionID)
	return sessionID
}

// puzzleDate resolves the ?date= override, falling back to today in the
// configured zone when it is missing or malformed.
func (app *App) puzzleDate(c *gin.Context) (calendar.CivilDate, bool) {
	raw := c.Query("date")
	date, overridden := calendar.Resolve(raw, app.Clock, app.Location)
	if raw != "" && !overridden {
		logRequestWarn(c.Request.Context(), "Ignoring invalid date override %q, playing %s", raw, date)
	}
	return date, overridden
}

// startSession loads the player's state and starts the game for the
// requested date. Callers hold SessionMutex.
func (app *App) startSession(c *gin.Context, sessionID string) (session.Session, bool, error) {
	date, overridden := app.puzzleDate(c)
	st := app.loadState(c.Request.Context(), sessionID)
	s, err := session.Start(st, app.Vocab, date)
	if err != nil {
		return session.Session{}, false, err
	}
	return s, overridden, nil
}
