// Package share renders a finished game as copyable text.
package share

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"wordle/internal/calendar"
	"wordle/internal/engine"
	"wordle/internal/stats"
)

// Title prefixes the header line.
const Title = "xdOS Wordle"

// Attempts is the header score: a win count in 1..6, or Failed.
type Attempts int

// Failed marks a game that used every guess without winning.
const Failed Attempts = 0

func (a Attempts) String() string {
	if a == Failed {
		return "X"
	}
	return strconv.Itoa(int(a))
}

var glyphs = map[engine.LetterStatus]string{
	engine.StatusCorrect: "🟩",
	engine.StatusPresent: "🟨",
	engine.StatusAbsent:  "⬛",
}

// AttemptsFor derives the header score from a finished record.
func AttemptsFor(rec *stats.GameRecord) Attempts {
	if rec == nil || rec.Result == nil || !rec.Result.Won {
		return Failed
	}
	return Attempts(rec.Result.Attempts)
}

// BuildShareText returns the header line, a blank line, and one glyph row per
// evaluation.
func BuildShareText(date calendar.CivilDate, attempts Attempts, evals []engine.Evaluation) string {
	header := fmt.Sprintf("%s %s %s/%d", Title, date, attempts, engine.MaxGuesses)
	rows := lo.Map(evals, func(e engine.Evaluation, _ int) string {
		return Row(e)
	})
	return header + "\n\n" + strings.Join(rows, "\n")
}

// Row renders one evaluation as a line of glyphs.
func Row(e engine.Evaluation) string {
	return strings.Join(lo.Map(e.Statuses, func(s engine.LetterStatus, _ int) string {
		return glyphs[s]
	}), "")
}
