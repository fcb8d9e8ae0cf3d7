// internal/solver/engine.go
//
// Core solver engine for a single Wordle game.
// Responsibilities:
//   - Own the candidate subset over the shared pattern matrix.
//   - Validate and apply turns (pattern range, vocabulary membership),
//     filtering candidates all-or-nothing.
//   - Track state transitions: ongoing -> won/lost (6-attempt limit).
//
// Notes:
//   - The vocabulary and matrix live in the shared immutable core, so
//     Clone copies only the candidate slices and counters.
//   - Candidates only shrink; a failed turn changes nothing, which is
//     what makes session replay trivially correct.

package solver

import (
	"fmt"

	"github.com/drewxgarcia/wordle-solver/internal/words"
)

const defaultMaxAttempts = 6

// Solver filters a candidate set turn by turn and ranks guesses.
// Not safe for concurrent mutation; clone per goroutine instead.
type Solver struct {
	core           *core
	candidateIdx   []int
	candidateWords []words.Word
	attempts       int
	maxAttempts    int
}

// New loads a vocabulary file and constructs a solver over it.
func New(path string) (*Solver, error) {
	list, err := words.Load(path)
	if err != nil {
		return nil, err
	}
	return NewFromWords(list)
}

// NewFromWords constructs a solver over an in-memory vocabulary.
// The list is deduplicated order-preserving; an empty vocabulary is an
// error since a solver must always hold at least one candidate.
func NewFromWords(list []words.Word) (*Solver, error) {
	list = words.Dedup(list)
	if len(list) == 0 {
		return nil, words.ErrEmptyWordList
	}
	c := newCore(list)

	idx := make([]int, c.n)
	for i := range idx {
		idx[i] = i
	}
	cands := make([]words.Word, c.n)
	copy(cands, c.words)

	return &Solver{
		core:           c,
		candidateIdx:   idx,
		candidateWords: cands,
		maxAttempts:    defaultMaxAttempts,
	}, nil
}

// Clone copies the solver state. The pattern matrix is shared, so this
// is cheap: only candidate slices and counters are duplicated.
func (s *Solver) Clone() *Solver {
	c := *s
	c.candidateIdx = append([]int(nil), s.candidateIdx...)
	c.candidateWords = append([]words.Word(nil), s.candidateWords...)
	return &c
}

// Candidates returns the words still consistent with all feedback so
// far, in vocabulary order. Callers must not mutate the slice.
func (s *Solver) Candidates() []words.Word { return s.candidateWords }

// AttemptNumber is the 1-based number of the next turn.
func (s *Solver) AttemptNumber() int { return s.attempts + 1 }

// MaxAttempts is the fixed turn limit.
func (s *Solver) MaxAttempts() int { return s.maxAttempts }

// ContainsWord reports whether the word is in the full vocabulary
// (not just the live candidate set).
func (s *Solver) ContainsWord(w words.Word) bool {
	_, ok := s.core.index[w]
	return ok
}

// checkGameStatus classifies the game after a successful turn.
// Winning takes priority over running out of attempts.
func (s *Solver) checkGameStatus(code PatternCode) Status {
	switch {
	case code == AllGreen:
		return StatusWon
	case s.attempts >= s.maxAttempts:
		return StatusLost
	default:
		return StatusOngoing
	}
}

// ApplyTurn validates a (guess, feedback) pair and narrows the
// candidate set to the words consistent with it.
//
// Validation order:
//  1. feedback outside [0,243)            -> ErrInvalidResultsPattern
//  2. guess outside the vocabulary        -> ErrGuessNotInWordList
//  3. no candidate matches the pair       -> ErrInconsistentFeedback
//
// The operation is all-or-nothing: on any error no state changes, so
// the same turn can be corrected and retried. On success the attempt
// counter advances and the resulting status is returned.
func (s *Solver) ApplyTurn(guess words.Word, feedback PatternCode) (Status, error) {
	if !feedback.Valid() {
		return StatusOngoing, fmt.Errorf("%w (code %d)", ErrInvalidResultsPattern, feedback)
	}
	code := uint8(feedback)

	guessIdx, ok := s.core.index[guess]
	if !ok {
		return StatusOngoing, fmt.Errorf("%w: %q", ErrGuessNotInWordList, guess.String())
	}
	rowStart := guessIdx * s.core.n

	next := make([]int, 0, len(s.candidateIdx))
	for _, targetIdx := range s.candidateIdx {
		if s.core.matrix[rowStart+targetIdx] == code {
			next = append(next, targetIdx)
		}
	}
	if len(next) == 0 {
		return StatusOngoing, ErrInconsistentFeedback
	}

	cands := make([]words.Word, 0, len(next))
	for _, idx := range next {
		cands = append(cands, s.core.words[idx])
	}
	s.candidateIdx = next
	s.candidateWords = cands
	s.attempts++
	return s.checkGameStatus(feedback), nil
}
