package main

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"wordle/internal/session"
	"wordle/internal/stats"
)

var (
	guessesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordle_guesses_total",
		Help: "Guess submissions by result",
	}, []string{"result"})

	gamesFinishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordle_games_finished_total",
		Help: "Games finalized by outcome",
	}, []string{"outcome"})

	stateLoadFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordle_state_load_failures_total",
		Help: "Saved states replaced by the default state, by reason",
	}, []string{"reason"})

	sharesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wordle_shares_total",
		Help: "Share texts generated",
	})

	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wordle_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})
)

var noticeLabels = map[session.Notice]string{
	session.NoticeNone:             "accepted",
	session.NoticeWon:              "won",
	session.NoticeLost:             "lost",
	session.NoticeNotEnoughLetters: "not_enough_letters",
	session.NoticeLettersOnly:      "letters_only",
	session.NoticeNotInWordList:    "not_in_word_list",
	session.NoticeAlreadyGuessed:   "already_guessed",
	session.NoticeGameOver:         "game_over",
}

// recordGuess counts one submission and, when it ended the game, the outcome.
func recordGuess(n session.Notice) {
	label, ok := noticeLabels[n]
	if !ok {
		label = "other"
	}
	guessesTotal.WithLabelValues(label).Inc()
	switch n {
	case session.NoticeWon:
		gamesFinishedTotal.WithLabelValues("won").Inc()
	case session.NoticeLost:
		gamesFinishedTotal.WithLabelValues("lost").Inc()
	}
}

func loadFailureReason(err error) string {
	switch {
	case errors.Is(err, stats.ErrCorrupt):
		return "corrupt"
	case errors.Is(err, stats.ErrUnsupportedVersion):
		return "unsupported_version"
	default:
		return "read_error"
	}
}
