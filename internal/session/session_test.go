package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordle/internal/calendar"
	"wordle/internal/engine"
	"wordle/internal/stats"
	"wordle/internal/vocab"
)

const today calendar.CivilDate = "2026-10-16"

// A single-answer vocabulary makes every date's answer "zebra".
func newTestSession(t *testing.T, st stats.State) Session {
	t.Helper()
	v, err := vocab.New([]string{"zebra"}, []string{"crane", "house", "train", "phone", "apple", "bread"})
	require.NoError(t, err)
	s, err := Start(st, v, today)
	require.NoError(t, err)
	return s
}

func typeWord(s Session, word string) Session {
	for _, r := range word {
		s, _ = Reduce(s, TypeLetter{Letter: r})
	}
	return s
}

func TestStartFresh(t *testing.T) {
	s := newTestSession(t, stats.NewState())
	assert.Equal(t, today, s.Date())
	assert.Equal(t, "zebra", s.Puzzle.Answer)
	assert.Empty(t, s.Guesses)
	assert.False(t, s.Over())
	_, ok := s.ShareText()
	assert.False(t, ok)
}

func TestTypingAndDeleting(t *testing.T) {
	s := newTestSession(t, stats.NewState())

	s = typeWord(s, "CRANES")
	assert.Equal(t, "crane", s.Current, "input is lowercased and capped at five letters")

	s, _ = Reduce(s, DeleteLetter{})
	assert.Equal(t, "cran", s.Current)

	s, _ = Reduce(s, TypeLetter{Letter: '1'})
	assert.Equal(t, "cran", s.Current, "non-letters are ignored")

	for range 10 {
		s, _ = Reduce(s, DeleteLetter{})
	}
	assert.Equal(t, "", s.Current)
}

func TestSubmitRejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Notice
	}{
		{"too short", "cran", NoticeNotEnoughLetters},
		{"too long", "cranes", NoticeNotEnoughLetters},
		{"empty", "", NoticeNotEnoughLetters},
		{"digit", "cr4ne", NoticeLettersOnly},
		{"accented", "crâne", NoticeLettersOnly},
		{"unknown word", "zzzzz", NoticeNotInWordList},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, stats.NewState())
			next, notice := SubmitGuess(s, tt.input)
			assert.Equal(t, tt.want, notice)
			assert.True(t, notice.Rejected())
			assert.Empty(t, next.Guesses)
			assert.Nil(t, next.State.Game(today))
		})
	}
}

func TestTypedNonASCIILettersAreRejectedOnSubmit(t *testing.T) {
	s := typeWord(newTestSession(t, stats.NewState()), "ééééé")
	_, notice := Reduce(s, Submit{})
	assert.Equal(t, NoticeLettersOnly, notice)
}

func TestAlreadyGuessed(t *testing.T) {
	s := newTestSession(t, stats.NewState())
	s, notice := SubmitGuess(s, "crane")
	require.Equal(t, NoticeNone, notice)

	s, notice = SubmitGuess(s, " CRANE ")
	assert.Equal(t, NoticeAlreadyGuessed, notice)
	assert.Equal(t, []string{"crane"}, s.Guesses)
}

func TestAcceptedGuessIsRecorded(t *testing.T) {
	s := newTestSession(t, stats.NewState())
	s = typeWord(s, "crane")
	s, notice := Reduce(s, Submit{})

	assert.Equal(t, NoticeNone, notice)
	assert.False(t, notice.Rejected())
	assert.Equal(t, "", s.Current)
	rec := s.State.Game(today)
	require.NotNil(t, rec)
	assert.Equal(t, []string{"crane"}, rec.Guesses)
	assert.Nil(t, rec.Result)
	assert.Equal(t, 0, s.State.Stats.Played)
}

func TestWinFinalizesOnce(t *testing.T) {
	s := newTestSession(t, stats.NewState())
	s, _ = SubmitGuess(s, "crane")
	s, notice := SubmitGuess(s, "ZEBRA")

	assert.Equal(t, NoticeWon, notice)
	assert.True(t, s.Won())
	assert.True(t, s.Over())
	assert.Equal(t, 1, s.State.Stats.Played)
	assert.Equal(t, 1, s.State.Stats.Wins)
	assert.Equal(t, 1, s.State.Stats.CurrentStreak)
	assert.Equal(t, []int{0, 1, 0, 0, 0, 0}, s.State.Stats.GuessDist)
	assert.Equal(t, &stats.Outcome{Won: true, Attempts: 2}, s.State.Game(today).Result)

	after, notice := SubmitGuess(s, "house")
	assert.Equal(t, NoticeGameOver, notice)
	assert.Equal(t, s.State.Stats, after.State.Stats)
	assert.Equal(t, s.Guesses, after.Guesses)

	typed, _ := Reduce(s, TypeLetter{Letter: 'a'})
	assert.Equal(t, "", typed.Current, "input is frozen once the game is over")
}

func TestLossAfterSixGuesses(t *testing.T) {
	s := newTestSession(t, stats.NewState())
	var notice Notice
	for _, g := range []string{"crane", "house", "train", "phone", "apple"} {
		s, notice = SubmitGuess(s, g)
		require.Equal(t, NoticeNone, notice, g)
	}
	s, notice = SubmitGuess(s, "bread")

	assert.Equal(t, NoticeLost, notice)
	assert.True(t, s.Lost())
	assert.Equal(t, 1, s.State.Stats.Played)
	assert.Equal(t, 0, s.State.Stats.Wins)
	assert.Equal(t, 0, s.State.Stats.CurrentStreak)
	assert.Equal(t, &stats.Outcome{Won: false, Attempts: 6}, s.State.Game(today).Result)

	text, ok := s.ShareText()
	require.True(t, ok)
	assert.Contains(t, text, "xdOS Wordle 2026-10-16 X/6")
}

func TestReloadingFinishedGameDoesNotDoubleCount(t *testing.T) {
	s := newTestSession(t, stats.NewState())
	s, _ = SubmitGuess(s, "zebra")
	require.Equal(t, 1, s.State.Stats.Played)

	reloaded := newTestSession(t, s.State)
	assert.True(t, reloaded.Over())
	assert.Equal(t, []string{"zebra"}, reloaded.Guesses)

	reloaded, notice := SubmitGuess(reloaded, "crane")
	assert.Equal(t, NoticeGameOver, notice)
	assert.Equal(t, 1, reloaded.State.Stats.Played)
}

func TestRestoresGuessesInProgress(t *testing.T) {
	st := stats.RecordGuesses(stats.NewState(), today, []string{"crane", "house"})
	s := newTestSession(t, st)
	assert.Equal(t, []string{"crane", "house"}, s.Guesses)
	assert.False(t, s.Over())

	other, err := Start(st, s.vocab, "2026-10-17")
	require.NoError(t, err)
	assert.Empty(t, other.Guesses, "progress is per date")
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := newTestSession(t, stats.NewState())
	s, _ = SubmitGuess(s, "crane")
	before := s.State.Clone()

	_, _ = SubmitGuess(s, "zebra")
	assert.Equal(t, []string{"crane"}, s.Guesses)
	assert.Equal(t, before, s.State)
}

func TestShareTextAndKeyboard(t *testing.T) {
	s := newTestSession(t, stats.NewState())
	s, _ = SubmitGuess(s, "crane")

	kb := s.Keyboard()
	assert.Equal(t, engine.StatusAbsent, kb["c"])
	assert.Equal(t, engine.StatusPresent, kb["r"])
	assert.Equal(t, engine.StatusPresent, kb["e"])

	s, _ = SubmitGuess(s, "zebra")
	kb = s.Keyboard()
	assert.Equal(t, engine.StatusCorrect, kb["r"], "keyboard upgrades to correct")
	assert.Equal(t, engine.StatusAbsent, kb["n"])

	text, ok := s.ShareText()
	require.True(t, ok)
	assert.Equal(t, "xdOS Wordle 2026-10-16 2/6\n\n⬛🟨🟨⬛🟨\n🟩🟩🟩🟩🟩", text)
}

func TestStartWithEmptyVocabulary(t *testing.T) {
	_, err := Start(stats.NewState(), &vocab.Vocabulary{}, today)
	assert.Error(t, err)
}
