// Package daily picks the day's answer from the answer vocabulary.
package daily

import (
	"errors"
	"fmt"

	"wordle/internal/calendar"
)

// AnchorDate is day zero of the rotation. Moving it only shifts which word
// lands on which day.
const AnchorDate calendar.CivilDate = "2021-06-19"

// ErrInvalidVocabularySize is returned when the answer list is empty.
var ErrInvalidVocabularySize = errors.New("vocabulary size must be > 0")

// Puzzle is the answer chosen for one date.
type Puzzle struct {
	Date   calendar.CivilDate `json:"date"`
	Index  int                `json:"index"`
	Answer string             `json:"-"`
}

// PickDailyAnswerIndex maps date to an index in [0, size). The result is
// periodic in the day offset with period size.
func PickDailyAnswerIndex(date calendar.CivilDate, size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidVocabularySize, size)
	}
	delta, err := calendar.DaysBetween(AnchorDate, date)
	if err != nil {
		return 0, err
	}
	// delta is negative before the anchor.
	return ((delta % size) + size) % size, nil
}

// Pick returns the puzzle for date drawn from answers.
func Pick(date calendar.CivilDate, answers []string) (Puzzle, error) {
	idx, err := PickDailyAnswerIndex(date, len(answers))
	if err != nil {
		return Puzzle{}, err
	}
	return Puzzle{Date: date, Index: idx, Answer: answers[idx]}, nil
}
