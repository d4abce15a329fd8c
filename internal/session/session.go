// Package session drives one day's game as explicit state transitions. A
// Session is a plain value; Reduce returns the next value and never mutates
// its input, so callers decide when to persist.
package session

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"wordle/internal/calendar"
	"wordle/internal/daily"
	"wordle/internal/engine"
	"wordle/internal/share"
	"wordle/internal/stats"
	"wordle/internal/vocab"
)

// Notice is the short message shown after an event. The zero value means
// nothing to report.
type Notice string

const (
	NoticeNone             Notice = ""
	NoticeNotEnoughLetters Notice = "Not enough letters"
	NoticeLettersOnly      Notice = "Use A–Z only"
	NoticeNotInWordList    Notice = "Not in word list"
	NoticeAlreadyGuessed   Notice = "Already guessed"
	NoticeGameOver         Notice = "Game over"
	NoticeWon              Notice = "Solved"
	NoticeLost             Notice = "Out of guesses"
)

// Rejected reports whether the notice refused a submission.
func (n Notice) Rejected() bool {
	switch n {
	case NoticeNotEnoughLetters, NoticeLettersOnly, NoticeNotInWordList, NoticeAlreadyGuessed, NoticeGameOver:
		return true
	}
	return false
}

// Event is an input to Reduce.
type Event interface {
	event()
}

// TypeLetter appends one letter to the current input.
type TypeLetter struct {
	Letter rune
}

// DeleteLetter removes the last letter of the current input.
type DeleteLetter struct{}

// Submit commits the current input as a guess.
type Submit struct{}

func (TypeLetter) event()   {}
func (DeleteLetter) event() {}
func (Submit) event()       {}

// Session is one player's game for one date together with their persisted
// state.
type Session struct {
	Puzzle  daily.Puzzle
	Guesses []string
	Current string
	Notice  Notice
	State   stats.State

	vocab *vocab.Vocabulary
}

// Start builds the session for date, restoring any guesses already recorded
// for it in state.
func Start(state stats.State, v *vocab.Vocabulary, date calendar.CivilDate) (Session, error) {
	p, err := daily.Pick(date, v.Answers)
	if err != nil {
		return Session{}, err
	}
	s := Session{Puzzle: p, Guesses: []string{}, State: state.Clone(), vocab: v}
	if rec := state.Game(date); rec != nil {
		s.Guesses = rec.Guesses
	}
	return s, nil
}

// Date is the civil date being played.
func (s Session) Date() calendar.CivilDate { return s.Puzzle.Date }

// Won reports whether the answer has been guessed.
func (s Session) Won() bool {
	return slices.Contains(s.Guesses, s.Puzzle.Answer)
}

// Lost reports whether every guess was used without a win.
func (s Session) Lost() bool {
	return !s.Won() && len(s.Guesses) >= engine.MaxGuesses
}

// Over reports whether no more guesses are accepted.
func (s Session) Over() bool { return s.Won() || s.Lost() }

// Evaluations scores every committed guess.
func (s Session) Evaluations() []engine.Evaluation {
	return lo.FilterMap(s.Guesses, func(g string, _ int) (engine.Evaluation, bool) {
		e, err := engine.EvaluateGuess(s.Puzzle.Answer, g)
		return e, err == nil
	})
}

// Keyboard is the best status seen so far for each guessed letter.
func (s Session) Keyboard() map[string]engine.LetterStatus {
	return engine.BuildKeyboardStatus(s.Evaluations())
}

// ShareText renders the finished game. ok is false while it is still running.
func (s Session) ShareText() (text string, ok bool) {
	if !s.Over() {
		return "", false
	}
	attempts := share.AttemptsFor(s.State.Game(s.Date()))
	if attempts == share.Failed && s.Won() {
		// finished record without an outcome
		attempts = share.Attempts(len(s.Guesses))
	}
	return share.BuildShareText(s.Date(), attempts, s.Evaluations()), true
}

// Reduce applies ev and returns the next session and its notice.
func Reduce(s Session, ev Event) (Session, Notice) {
	next := s
	next.Guesses = slices.Clone(s.Guesses)
	next.Notice = NoticeNone

	switch e := ev.(type) {
	case TypeLetter:
		if s.Over() || utf8.RuneCountInString(s.Current) >= engine.WordLength || !unicode.IsLetter(e.Letter) {
			return next, NoticeNone
		}
		next.Current = s.Current + string(unicode.ToLower(e.Letter))
	case DeleteLetter:
		if s.Over() || s.Current == "" {
			return next, NoticeNone
		}
		_, size := utf8.DecodeLastRuneInString(s.Current)
		next.Current = s.Current[:len(s.Current)-size]
	case Submit:
		next = submit(next)
	}
	return next, next.Notice
}

// SubmitGuess types word and submits it in one step.
func SubmitGuess(s Session, word string) (Session, Notice) {
	if s.Over() {
		return Reduce(s, Submit{})
	}
	next := s
	next.Current = strings.TrimSpace(word)
	return Reduce(next, Submit{})
}

func submit(s Session) Session {
	reject := func(n Notice) Session {
		s.Notice = n
		return s
	}

	if s.Over() {
		return reject(NoticeGameOver)
	}
	if utf8.RuneCountInString(s.Current) != engine.WordLength {
		return reject(NoticeNotEnoughLetters)
	}
	guess := engine.NormalizeGuess(s.Current)
	if !engine.IsFiveLetters(guess) {
		return reject(NoticeLettersOnly)
	}
	if s.vocab == nil || !s.vocab.IsAllowed(guess) {
		return reject(NoticeNotInWordList)
	}
	if slices.Contains(s.Guesses, guess) {
		return reject(NoticeAlreadyGuessed)
	}

	s.Guesses = append(s.Guesses, guess)
	s.Current = ""

	switch {
	case s.Won():
		s.State = stats.Finalize(s.State, s.Date(), s.Guesses, stats.Outcome{Won: true, Attempts: len(s.Guesses)})
		s.Notice = NoticeWon
	case s.Lost():
		s.State = stats.Finalize(s.State, s.Date(), s.Guesses, stats.Outcome{Won: false, Attempts: len(s.Guesses)})
		s.Notice = NoticeLost
	default:
		s.State = stats.RecordGuesses(s.State, s.Date(), s.Guesses)
	}
	return s
}
