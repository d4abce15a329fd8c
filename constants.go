package main

import "time"

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RoutePuzzle  = "/api/puzzle"
	RouteGuess   = "/api/guess"
	RouteStats   = "/api/stats"
	RouteShare   = "/api/share"
	RouteHealthz = "/healthz"
	RouteMetrics = "/metrics"
)

// Rate limiter constants
const (
	limiterIdleTTL    = 10 * time.Minute // buckets unused this long are dropped
	limiterSweepAfter = 1024             // sweep once this many buckets exist
)

// Request ID constants
const (
	requestIDHeader    = "X-Request-Id"
	maxRequestIDLength = 64
)

// Error message constants
const (
	ErrorInvalidRequest    = "Guess is required."
	ErrorGameInProgress    = "Game is still in progress."
	ErrorPuzzleUnavailable = "Puzzle is unavailable."
	ErrorStateNotSaved     = "Progress could not be saved."
	ErrorTooManyRequests   = "Too many requests. Please slow down."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
