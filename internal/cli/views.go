package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"wordle/internal/calendar"
	"wordle/internal/engine"
	"wordle/internal/session"
	"wordle/internal/share"
	"wordle/internal/stats"
)

// BoardView is one day's board as printed by today, guess and play.
type BoardView struct {
	Date        calendar.CivilDate             `json:"date"`
	Index       int                            `json:"index"`
	Guesses     []string                       `json:"guesses"`
	Evaluations []engine.Evaluation            `json:"evaluations"`
	Keyboard    map[string]engine.LetterStatus `json:"keyboard"`
	Over        bool                           `json:"over"`
	Won         bool                           `json:"won"`
	Answer      string                         `json:"answer,omitempty"`
	Notice      session.Notice                 `json:"notice,omitempty"`
}

func newBoardView(s session.Session, notice session.Notice) BoardView {
	b := BoardView{
		Date:        s.Date(),
		Index:       s.Puzzle.Index,
		Guesses:     s.Guesses,
		Evaluations: s.Evaluations(),
		Keyboard:    s.Keyboard(),
		Over:        s.Over(),
		Won:         s.Won(),
		Notice:      notice,
	}
	if b.Over {
		b.Answer = s.Puzzle.Answer
	}
	return b
}

func (b BoardView) String() string {
	lines := []string{fmt.Sprintf("%s %s (#%d)", share.Title, b.Date, b.Index), ""}
	if len(b.Evaluations) == 0 {
		lines = append(lines, "No guesses yet.")
	}
	for _, e := range b.Evaluations {
		lines = append(lines, strings.ToUpper(e.Guess)+" "+share.Row(e))
	}
	lines = append(lines, "")

	for _, status := range []engine.LetterStatus{engine.StatusCorrect, engine.StatusPresent, engine.StatusAbsent} {
		letters := lo.Keys(lo.PickByValues(b.Keyboard, []engine.LetterStatus{status}))
		if len(letters) == 0 {
			continue
		}
		slices.Sort(letters)
		title := strings.ToUpper(string(status[:1])) + string(status[1:])
		lines = append(lines, title+": "+strings.ToUpper(strings.Join(letters, " ")))
	}

	if b.Notice.Rejected() {
		lines = append(lines, string(b.Notice))
	}
	switch {
	case b.Won:
		lines = append(lines, fmt.Sprintf("Solved in %d/%d", len(b.Guesses), engine.MaxGuesses))
	case b.Over:
		lines = append(lines, fmt.Sprintf("Out of guesses. The word was %s.", strings.ToUpper(b.Answer)))
	default:
		lines = append(lines, fmt.Sprintf("%d/%d guesses used", len(b.Guesses), engine.MaxGuesses))
	}
	return strings.Join(lines, "\n")
}

// StatsView is the statistics screen.
type StatsView struct {
	stats.Statistics
	WinRate int `json:"winRate"`
}

func newStatsView(s stats.Statistics) StatsView {
	return StatsView{Statistics: s, WinRate: s.WinRate()}
}

func (v StatsView) String() string {
	lines := []string{
		fmt.Sprintf("Played: %d", v.Played),
		fmt.Sprintf("Win %%: %d", v.WinRate),
		fmt.Sprintf("Current streak: %d", v.CurrentStreak),
		fmt.Sprintf("Max streak: %d", v.MaxStreak),
		"",
		"Guess distribution:",
	}
	for i, n := range v.GuessDist {
		bar := strings.Repeat("#", n)
		if n > 0 {
			bar += " "
		}
		lines = append(lines, fmt.Sprintf("%d | %s%d", i+1, bar, n))
	}
	return strings.Join(lines, "\n")
}

// ShareView carries the share text; text output is the bare text.
type ShareView struct {
	Date calendar.CivilDate `json:"date"`
	Text string             `json:"text"`
}

func (v ShareView) String() string { return v.Text }
