package solver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drewxgarcia/wordle-solver/internal/words"
)

func newTestSolver(t *testing.T, list ...string) *Solver {
	t.Helper()
	vocab := make([]words.Word, 0, len(list))
	for _, s := range list {
		vocab = append(vocab, word(t, s))
	}
	s, err := NewFromWords(vocab)
	require.NoError(t, err)
	return s
}

func TestApplyTurnFiltersByOracleCode(t *testing.T) {
	s := newTestSolver(t, "arise", "raise", "serai", "irate")

	status, err := s.ApplyTurn(word(t, "raise"), mustPattern(t, "YYGGG"))
	require.NoError(t, err)
	assert.Equal(t, StatusOngoing, status)
	assert.Equal(t, []words.Word{word(t, "arise")}, s.Candidates())
	assert.Equal(t, 2, s.AttemptNumber())
}

func TestApplyTurnAcceptsGuessOutsideCurrentCandidates(t *testing.T) {
	s := newTestSolver(t, "arise", "raise", "serai", "irate")

	_, err := s.ApplyTurn(word(t, "raise"), mustPattern(t, "YYGGG"))
	require.NoError(t, err)

	// "serai" was just eliminated, but any vocabulary word is a legal
	// guess; only membership in the full word list is required.
	feedback := Simulate(word(t, "serai"), word(t, "arise"))
	status, err := s.ApplyTurn(word(t, "serai"), feedback)
	require.NoError(t, err)
	assert.Equal(t, StatusOngoing, status)
	assert.Equal(t, []words.Word{word(t, "arise")}, s.Candidates())
}

func TestInconsistentFeedbackLeavesStateUntouched(t *testing.T) {
	s := newTestSolver(t, "arise", "raise", "serai", "irate")
	before := append([]words.Word(nil), s.Candidates()...)

	_, err := s.ApplyTurn(word(t, "raise"), mustPattern(t, "BBBBB"))
	assert.ErrorIs(t, err, ErrInconsistentFeedback)
	assert.Equal(t, before, s.Candidates())
	assert.Equal(t, 1, s.AttemptNumber())
}

func TestApplyTurnRejectsUnknownGuess(t *testing.T) {
	s := newTestSolver(t, "arise", "raise")

	_, err := s.ApplyTurn(word(t, "crane"), mustPattern(t, "BBBBB"))
	assert.ErrorIs(t, err, ErrGuessNotInWordList)
	assert.Contains(t, err.Error(), "crane")
	assert.Equal(t, 1, s.AttemptNumber())
	assert.Len(t, s.Candidates(), 2)
}

func TestApplyTurnRejectsOutOfRangePattern(t *testing.T) {
	s := newTestSolver(t, "arise", "raise")

	for _, code := range []PatternCode{243, 500, 65535} {
		_, err := s.ApplyTurn(word(t, "raise"), code)
		assert.ErrorIs(t, err, ErrInvalidResultsPattern, "code %d", code)
	}
	assert.Equal(t, 1, s.AttemptNumber())
}

func TestWinDetection(t *testing.T) {
	s := newTestSolver(t, "arise", "raise", "serai", "irate")

	status, err := s.ApplyTurn(word(t, "raise"), AllGreen)
	require.NoError(t, err)
	assert.Equal(t, StatusWon, status)
	assert.Equal(t, []words.Word{word(t, "raise")}, s.Candidates())
}

func TestLossDetectionOnSixthAttempt(t *testing.T) {
	s := newTestSolver(t, "arise", "raise")
	guess := word(t, "raise")
	feedback := Simulate(guess, word(t, "arise"))

	// Re-applying the same consistent pair is a no-op on the candidate
	// set, so it can burn attempts without ever winning.
	for turn := 1; turn <= 5; turn++ {
		status, err := s.ApplyTurn(guess, feedback)
		require.NoError(t, err)
		assert.Equal(t, StatusOngoing, status, "turn %d", turn)
	}
	status, err := s.ApplyTurn(guess, feedback)
	require.NoError(t, err)
	assert.Equal(t, StatusLost, status)
}

func TestWinOnFinalAttemptBeatsLoss(t *testing.T) {
	s := newTestSolver(t, "arise", "raise")
	guess := word(t, "raise")
	feedback := Simulate(guess, word(t, "arise"))

	for turn := 1; turn <= 5; turn++ {
		_, err := s.ApplyTurn(guess, feedback)
		require.NoError(t, err)
	}
	status, err := s.ApplyTurn(word(t, "arise"), AllGreen)
	require.NoError(t, err)
	assert.Equal(t, StatusWon, status)
}

func TestFilteringMatchesOracleExactly(t *testing.T) {
	vocab := []string{"apple", "ample", "maple", "amble", "abide", "plied"}
	for _, guess := range vocab {
		for _, target := range vocab {
			s := newTestSolver(t, vocab...)
			feedback := Simulate(word(t, guess), word(t, target))

			_, err := s.ApplyTurn(word(t, guess), feedback)
			require.NoError(t, err)

			kept := make(map[words.Word]bool)
			for _, w := range s.Candidates() {
				kept[w] = true
				assert.Equal(t, feedback, Simulate(word(t, guess), w),
					"kept candidate %s disagrees with feedback", w)
			}
			for _, v := range vocab {
				w := word(t, v)
				if Simulate(word(t, guess), w) != feedback {
					assert.False(t, kept[w], "word %s should have been eliminated", w)
				}
			}
		}
	}
}

func TestCloneSharesMatrixButNotState(t *testing.T) {
	s := newTestSolver(t, "arise", "raise", "serai", "irate")
	c := s.Clone()
	require.Same(t, s.core, c.core)

	_, err := c.ApplyTurn(word(t, "raise"), mustPattern(t, "YYGGG"))
	require.NoError(t, err)

	assert.Len(t, c.Candidates(), 1)
	assert.Len(t, s.Candidates(), 4)
	assert.Equal(t, 1, s.AttemptNumber())
	assert.Equal(t, 2, c.AttemptNumber())
}

func TestNewFromWordsRejectsEmpty(t *testing.T) {
	_, err := NewFromWords(nil)
	assert.ErrorIs(t, err, words.ErrEmptyWordList)
}

func TestNewFromWordsDeduplicates(t *testing.T) {
	s := newTestSolver(t, "raise", "arise", "raise")
	assert.Equal(t, []words.Word{word(t, "raise"), word(t, "arise")}, s.Candidates())
}

func TestContainsWord(t *testing.T) {
	s := newTestSolver(t, "arise", "raise")
	assert.True(t, s.ContainsWord(word(t, "arise")))
	assert.False(t, s.ContainsWord(word(t, "crane")))
}

func TestNewLoadsVocabularyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\nberry\nchase\n"), 0o644))

	s, err := New(path)
	require.NoError(t, err)
	assert.Len(t, s.Candidates(), 3)
	assert.Equal(t, 1, s.AttemptNumber())
	assert.Equal(t, 6, s.MaxAttempts())
}

func TestNewRejectsMalformedVocabularyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\nbad!\n"), 0o644))

	_, err := New(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
