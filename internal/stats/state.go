// Package stats holds the persisted game state: per-date guess history and the
// cumulative statistics, with the finalize-once transition that updates them.
package stats

import (
	"maps"
	"slices"

	"wordle/internal/calendar"
	"wordle/internal/engine"
)

// SchemaVersion is the only persisted layout this package reads.
const SchemaVersion = 1

// StorageKey names the single local blob a device keeps.
const StorageKey = "xdos-wordle/v1"

// Outcome is set once when a game ends.
type Outcome struct {
	Won      bool `json:"won"`
	Attempts int  `json:"attempts"`
}

// GameRecord is the progress of one date's game.
type GameRecord struct {
	Guesses []string `json:"guesses"`
	// Result is set after the game ends and prevents double counting on reload.
	Result *Outcome `json:"result,omitempty"`
}

// Statistics are the cumulative counters shown on the stats screen.
type Statistics struct {
	Played        int                 `json:"played"`
	Wins          int                 `json:"wins"`
	CurrentStreak int                 `json:"currentStreak"`
	MaxStreak     int                 `json:"maxStreak"`
	GuessDist     []int               `json:"guessDist"` // wins in 1..6 attempts
	LastCompleted *calendar.CivilDate `json:"lastCompletedDate,omitempty"`
}

// State is the versioned document written to storage.
type State struct {
	Version int                                `json:"version"`
	Games   map[calendar.CivilDate]*GameRecord `json:"games"`
	Stats   Statistics                         `json:"stats"`
}

// NewStatistics returns zeroed statistics.
func NewStatistics() Statistics {
	return Statistics{GuessDist: make([]int, engine.MaxGuesses)}
}

// NewState returns the fresh default state.
func NewState() State {
	return State{
		Version: SchemaVersion,
		Games:   make(map[calendar.CivilDate]*GameRecord),
		Stats:   NewStatistics(),
	}
}

// WinRate returns wins as a percentage of games played, rounded half up to a
// whole number.
func (s Statistics) WinRate() int {
	if s.Played <= 0 {
		return 0
	}
	return (s.Wins*200 + s.Played) / (2 * s.Played)
}

// Clone returns a deep copy.
func (s Statistics) Clone() Statistics {
	out := s
	out.GuessDist = slices.Clone(s.GuessDist)
	if s.LastCompleted != nil {
		d := *s.LastCompleted
		out.LastCompleted = &d
	}
	return out
}

// Clone returns a deep copy.
func (r *GameRecord) Clone() *GameRecord {
	if r == nil {
		return nil
	}
	out := &GameRecord{Guesses: slices.Clone(r.Guesses)}
	if r.Result != nil {
		o := *r.Result
		out.Result = &o
	}
	return out
}

// Clone returns a deep copy of the state; mutating it never affects s.
func (s State) Clone() State {
	out := State{
		Version: s.Version,
		Games:   make(map[calendar.CivilDate]*GameRecord, len(s.Games)),
		Stats:   s.Stats.Clone(),
	}
	for d, g := range s.Games {
		out.Games[d] = g.Clone()
	}
	return out
}

// Game returns a copy of the record for date, or nil.
func (s State) Game(date calendar.CivilDate) *GameRecord {
	return s.Games[date].Clone()
}

// Dates returns the dates with a record, oldest first.
func (s State) Dates() []calendar.CivilDate {
	return slices.Sorted(maps.Keys(s.Games))
}
