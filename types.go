package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"wordle/internal/calendar"
	"wordle/internal/engine"
	"wordle/internal/session"
	"wordle/internal/stats"
	"wordle/internal/store"
	"wordle/internal/vocab"
)

type contextKey string

// clientLimiter is one client's token bucket on the guess route.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// App holds the shared server state. Handlers hang off it.
type App struct {
	Vocab    *vocab.Vocabulary
	Store    store.Store
	Clock    calendar.Clock
	Location *time.Location

	// SessionMutex serializes load, reduce and save so concurrent requests
	// for one session never interleave their writes.
	SessionMutex sync.RWMutex

	LimiterMap   map[string]*clientLimiter
	LimiterMutex sync.Mutex

	IsProduction   bool
	StartTime      time.Time
	CookieMaxAge   time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	StoreBackend   string
}

// GuessRequest is the body of a guess submission, JSON or form encoded.
type GuessRequest struct {
	Guess string `json:"guess" form:"guess" binding:"required,max=32"`
}

// PuzzleResponse describes the player's game for one date. The answer is
// only revealed once the game is over.
type PuzzleResponse struct {
	Date         calendar.CivilDate             `json:"date"`
	Index        int                            `json:"index"`
	DateOverride bool                           `json:"dateOverride"`
	MaxGuesses   int                            `json:"maxGuesses"`
	Guesses      []string                       `json:"guesses"`
	Evaluations  []engine.Evaluation            `json:"evaluations"`
	Keyboard     map[string]engine.LetterStatus `json:"keyboard"`
	Over         bool                           `json:"over"`
	Won          bool                           `json:"won"`
	Answer       string                         `json:"answer,omitempty"`
	Notice       session.Notice                 `json:"notice,omitempty"`
}

// StatsResponse is the cumulative statistics plus the derived win rate.
type StatsResponse struct {
	stats.Statistics
	WinRate int `json:"winRate"`
}

// ShareResponse carries the copyable result text.
type ShareResponse struct {
	Date calendar.CivilDate `json:"date"`
	Text string             `json:"text"`
}
