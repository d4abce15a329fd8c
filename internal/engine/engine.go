// Package engine scores guesses against the answer and folds the results into
// per-letter keyboard hints.
package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Game configuration constants
const (
	MaxGuesses = 6 // Maximum number of guesses per game
	WordLength = 5 // Length of the word to guess
)

// LetterStatus is the feedback for one letter of a guess.
type LetterStatus string

// Guess status constants
const (
	StatusAbsent  LetterStatus = "absent"
	StatusPresent LetterStatus = "present"
	StatusCorrect LetterStatus = "correct"
)

// ErrLengthMismatch is returned when the answer or guess is not exactly
// WordLength letters a-z.
var ErrLengthMismatch = errors.New("answer and guess must be 5 letters")

var fiveLetters = regexp.MustCompile(`^[a-z]{5}$`)

// Priority orders statuses for merging: correct > present > absent.
func (s LetterStatus) Priority() int {
	switch s {
	case StatusCorrect:
		return 3
	case StatusPresent:
		return 2
	case StatusAbsent:
		return 1
	}
	return 0
}

// Evaluation is one scored guess.
type Evaluation struct {
	Guess    string         `json:"guess"`
	Statuses []LetterStatus `json:"statuses"`
}

// NormalizeGuess trims and lowercases raw user input.
func NormalizeGuess(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsFiveLetters reports whether word is exactly five letters a-z.
func IsFiveLetters(word string) bool {
	return fiveLetters.MatchString(word)
}

// EvaluateGuess compares guess to answer position by position.
//
// Exact matches are marked first; the leftover answer letters are then handed
// out left to right as "present", so a letter occurring k times in the answer
// is never credited more than k times in the guess.
func EvaluateGuess(answer, guess string) (Evaluation, error) {
	a := strings.ToLower(answer)
	g := strings.ToLower(guess)
	if !IsFiveLetters(a) || !IsFiveLetters(g) {
		return Evaluation{}, fmt.Errorf("%w: answer=%q guess=%q", ErrLengthMismatch, answer, guess)
	}

	statuses := make([]LetterStatus, WordLength)
	remaining := make(map[byte]int, WordLength)

	for i := range WordLength {
		if g[i] == a[i] {
			statuses[i] = StatusCorrect
			continue
		}
		statuses[i] = StatusAbsent
		remaining[a[i]]++
	}

	for i := range WordLength {
		if statuses[i] == StatusCorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			statuses[i] = StatusPresent
			remaining[g[i]]--
		}
	}

	return Evaluation{Guess: g, Statuses: statuses}, nil
}

// EvaluateAll scores every guess against answer in order.
func EvaluateAll(answer string, guesses []string) ([]Evaluation, error) {
	evals := make([]Evaluation, 0, len(guesses))
	for _, g := range guesses {
		e, err := EvaluateGuess(answer, g)
		if err != nil {
			return nil, err
		}
		evals = append(evals, e)
	}
	return evals, nil
}

// MergeLetterStatus keeps whichever of prev and next ranks higher. An empty
// prev means the letter has not been seen yet.
func MergeLetterStatus(prev, next LetterStatus) LetterStatus {
	if prev == "" {
		return next
	}
	if next.Priority() > prev.Priority() {
		return next
	}
	return prev
}

// BuildKeyboardStatus aggregates every letter of every evaluation. A letter's
// status only ever upgrades.
func BuildKeyboardStatus(evals []Evaluation) map[string]LetterStatus {
	out := make(map[string]LetterStatus)
	for _, e := range evals {
		for i := 0; i < len(e.Guess) && i < len(e.Statuses); i++ {
			ch := e.Guess[i : i+1]
			out[ch] = MergeLetterStatus(out[ch], e.Statuses[i])
		}
	}
	return out
}
