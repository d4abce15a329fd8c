package stats

import (
	"slices"

	"wordle/internal/calendar"
)

// RecordGuesses stores guesses as the attempt list for date and keeps any
// outcome the record already has.
func RecordGuesses(s State, date calendar.CivilDate, guesses []string) State {
	next := s.Clone()
	if next.Games == nil {
		next.Games = make(map[calendar.CivilDate]*GameRecord)
	}
	rec := next.Games[date]
	if rec == nil {
		rec = &GameRecord{}
		next.Games[date] = rec
	}
	rec.Guesses = slices.Clone(guesses)
	if rec.Guesses == nil {
		rec.Guesses = []string{}
	}
	return next
}

// Finalize records guesses for date and applies outcome to the statistics,
// once per date. If the date already has an outcome only the guess list is
// updated.
//
// A win extends the streak only when the previous completed game was the day
// before date; any gap restarts it at 1. A loss resets it to 0.
func Finalize(s State, date calendar.CivilDate, guesses []string, outcome Outcome) State {
	next := RecordGuesses(s, date, guesses)
	rec := next.Games[date]
	if rec.Result != nil {
		return next
	}
	o := outcome
	rec.Result = &o

	st := &next.Stats
	if len(st.GuessDist) < len(NewStatistics().GuessDist) {
		st.GuessDist = resizeDist(st.GuessDist)
	}
	st.Played++
	if outcome.Won {
		st.Wins++
		if b := outcome.Attempts - 1; b >= 0 && b < len(st.GuessDist) {
			st.GuessDist[b]++
		}
		if continuesStreak(st.LastCompleted, date) {
			st.CurrentStreak++
		} else {
			st.CurrentStreak = 1
		}
		st.MaxStreak = max(st.MaxStreak, st.CurrentStreak)
	} else {
		st.CurrentStreak = 0
	}
	d := date
	st.LastCompleted = &d
	return next
}

func continuesStreak(last *calendar.CivilDate, date calendar.CivilDate) bool {
	if last == nil {
		return false
	}
	expected, err := calendar.AddDays(*last, 1)
	if err != nil {
		return false
	}
	return expected == date
}

func resizeDist(dist []int) []int {
	out := NewStatistics().GuessDist
	copy(out, dist)
	return out
}
