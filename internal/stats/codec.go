package stats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"wordle/internal/calendar"
	"wordle/internal/engine"
)

// Load failures. All of them resolve to the default state in LoadOrDefault;
// they stay distinct so callers can log and tests can tell them apart.
var (
	ErrNoData             = errors.New("no persisted state")
	ErrCorrupt            = errors.New("persisted state is corrupt")
	ErrUnsupportedVersion = errors.New("unsupported persisted state version")
)

type wireState struct {
	Version *int                               `json:"version"`
	Games   map[calendar.CivilDate]*GameRecord `json:"games"`
	Stats   *Statistics                        `json:"stats"`
}

// Encode serializes s. The whole document is written on every save.
func Encode(s State) ([]byte, error) {
	if s.Version == 0 {
		s.Version = SchemaVersion
	}
	if s.Games == nil {
		s.Games = map[calendar.CivilDate]*GameRecord{}
	}
	if s.Stats.GuessDist == nil {
		s.Stats.GuessDist = NewStatistics().GuessDist
	}
	return json.Marshal(s)
}

// Decode parses a persisted blob. Members missing from an otherwise valid
// version 1 document fall back to their defaults.
func Decode(blob []byte) (State, error) {
	if len(bytes.TrimSpace(blob)) == 0 {
		return State{}, ErrNoData
	}
	var w wireState
	if err := json.Unmarshal(blob, &w); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if w.Version == nil && w.Games == nil && w.Stats == nil {
		return State{}, fmt.Errorf("%w: empty document", ErrCorrupt)
	}
	if w.Version == nil || *w.Version != SchemaVersion {
		v := 0
		if w.Version != nil {
			v = *w.Version
		}
		return State{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	s := NewState()
	for d, g := range w.Games {
		if g == nil {
			continue
		}
		if g.Guesses == nil {
			g.Guesses = []string{}
		}
		s.Games[d] = g
	}
	if w.Stats != nil {
		s.Stats = *w.Stats
		if len(s.Stats.GuessDist) != engine.MaxGuesses {
			s.Stats.GuessDist = resizeDist(s.Stats.GuessDist)
		}
	}
	return s, nil
}

// LoadOrDefault decodes blob and substitutes the fresh default state on any
// failure. The returned error is informational only.
func LoadOrDefault(blob []byte) (State, error) {
	s, err := Decode(blob)
	if err != nil {
		return NewState(), err
	}
	return s, nil
}
