package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

func word(t *testing.T, s string) words.Word {
	t.Helper()
	w, err := words.Parse(s)
	require.NoError(t, err)
	return w
}

func pattern(t *testing.T, s string) solver.PatternCode {
	t.Helper()
	code, err := solver.ParsePattern(s)
	require.NoError(t, err)
	return code
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	vocab := []words.Word{
		word(t, "arise"), word(t, "raise"), word(t, "serai"), word(t, "irate"),
	}
	s, err := NewFromWords(vocab)
	require.NoError(t, err)
	return s
}

func TestApplyLogsTurnOnSuccess(t *testing.T) {
	s := newTestSession(t)

	status, err := s.Apply(word(t, "raise"), pattern(t, "YYGGG"))
	require.NoError(t, err)
	assert.Equal(t, solver.StatusOngoing, status)
	assert.Equal(t, solver.StatusOngoing, s.Status())
	require.Len(t, s.Turns(), 1)
	assert.Equal(t, Turn{Guess: word(t, "raise"), Feedback: pattern(t, "YYGGG")}, s.Turns()[0])
	assert.Equal(t, []words.Word{word(t, "arise")}, s.Solver().Candidates())
}

func TestApplyLogsNothingOnError(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Apply(word(t, "raise"), pattern(t, "BBBBB"))
	assert.ErrorIs(t, err, solver.ErrInconsistentFeedback)
	assert.Empty(t, s.Turns())
	assert.Equal(t, 1, s.Solver().AttemptNumber())

	_, err = s.Apply(word(t, "crane"), pattern(t, "YYGGG"))
	assert.ErrorIs(t, err, solver.ErrGuessNotInWordList)
	assert.Empty(t, s.Turns())
}

func TestUndoInvertsLastApply(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Apply(word(t, "irate"), solver.Simulate(word(t, "irate"), word(t, "arise")))
	require.NoError(t, err)
	candidatesAfterFirst := append([]words.Word(nil), s.Solver().Candidates()...)
	attemptAfterFirst := s.Solver().AttemptNumber()

	_, err = s.Apply(word(t, "raise"), pattern(t, "YYGGG"))
	require.NoError(t, err)
	require.Len(t, s.Turns(), 2)

	require.NoError(t, s.Undo())
	assert.Len(t, s.Turns(), 1)
	assert.Equal(t, candidatesAfterFirst, s.Solver().Candidates())
	assert.Equal(t, attemptAfterFirst, s.Solver().AttemptNumber())
}

func TestUndoToInitialState(t *testing.T) {
	s := newTestSession(t)
	initial := append([]words.Word(nil), s.Solver().Candidates()...)

	_, err := s.Apply(word(t, "raise"), pattern(t, "YYGGG"))
	require.NoError(t, err)
	require.NoError(t, s.Undo())

	assert.Empty(t, s.Turns())
	assert.Equal(t, initial, s.Solver().Candidates())
	assert.Equal(t, 1, s.Solver().AttemptNumber())
	assert.Equal(t, solver.StatusOngoing, s.Status())
}

func TestUndoOnEmptyLog(t *testing.T) {
	s := newTestSession(t)
	assert.ErrorIs(t, s.Undo(), ErrNothingToUndo)
}

func TestUndoAfterWinReopensGame(t *testing.T) {
	s := newTestSession(t)

	status, err := s.Apply(word(t, "raise"), solver.AllGreen)
	require.NoError(t, err)
	require.Equal(t, solver.StatusWon, status)
	require.Equal(t, solver.StatusWon, s.Status())

	require.NoError(t, s.Undo())
	assert.Equal(t, solver.StatusOngoing, s.Status())
	assert.Len(t, s.Solver().Candidates(), 4)
}

func TestUndoThenDivergentTurn(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Apply(word(t, "raise"), pattern(t, "YYGGG"))
	require.NoError(t, err)
	require.NoError(t, s.Undo())

	// The session accepts a different second history after the undo.
	status, err := s.Apply(word(t, "serai"), solver.Simulate(word(t, "serai"), word(t, "irate")))
	require.NoError(t, err)
	assert.Equal(t, solver.StatusOngoing, status)
	assert.Equal(t, []words.Word{word(t, "irate")}, s.Solver().Candidates())
}

func TestFromSolverLeavesSeedPristine(t *testing.T) {
	base, err := solver.NewFromWords([]words.Word{
		word(t, "arise"), word(t, "raise"), word(t, "serai"), word(t, "irate"),
	})
	require.NoError(t, err)

	s1 := FromSolver(base)
	_, err = s1.Apply(word(t, "raise"), pattern(t, "YYGGG"))
	require.NoError(t, err)

	// The seed solver is untouched, so further sessions start fresh.
	assert.Len(t, base.Candidates(), 4)
	s2 := FromSolver(base)
	assert.Len(t, s2.Solver().Candidates(), 4)
}

func TestNewLoadsVocabularyFile(t *testing.T) {
	_, err := New("testdata/does-not-exist.txt")
	assert.Error(t, err)
}
