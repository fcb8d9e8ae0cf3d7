// internal/session/session.go
//
// Undo-capable wrapper around the solver engine.
//
// A session keeps an ordered log of accepted turns next to a pristine
// copy of the starting solver. Undo pops the last turn and rebuilds the
// live solver by replaying the remainder from the pristine base; every
// logged turn already passed validation once, so the replay cannot
// fail. Undo is O(log length), acceptable with at most 6 turns.

package session

import (
	"errors"
	"fmt"

	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

// ErrNothingToUndo reports an undo on an empty turn log.
var ErrNothingToUndo = errors.New("session: nothing to undo")

// Turn is one accepted (guess, feedback) pair. Immutable once logged.
type Turn struct {
	Guess    words.Word
	Feedback solver.PatternCode
}

// Session pairs a live solver with its turn history.
// Single-owner: callers serialize access themselves.
type Session struct {
	base   *solver.Solver
	live   *solver.Solver
	turns  []Turn
	status solver.Status
}

// New loads a vocabulary file and opens a session over it.
func New(path string) (*Session, error) {
	s, err := solver.New(path)
	if err != nil {
		return nil, err
	}
	return FromSolver(s), nil
}

// NewFromWords opens a session over an in-memory vocabulary.
func NewFromWords(list []words.Word) (*Session, error) {
	s, err := solver.NewFromWords(list)
	if err != nil {
		return nil, err
	}
	return FromSolver(s), nil
}

// FromSolver opens a session starting from the given solver state.
// The argument is cloned twice and never mutated, so one prebuilt
// solver (and its pattern matrix) can seed any number of sessions.
func FromSolver(s *solver.Solver) *Session {
	return &Session{base: s.Clone(), live: s.Clone()}
}

// Solver exposes the live solver for read-side queries (candidates,
// suggestions, counters). Mutate only through Apply/Undo.
func (s *Session) Solver() *solver.Solver { return s.live }

// Turns returns the accepted turn log, oldest first.
func (s *Session) Turns() []Turn { return s.turns }

// Status reports the game state after the most recent accepted turn.
func (s *Session) Status() solver.Status { return s.status }

// Apply delegates to the engine and appends to the log only on
// success; engine errors pass through untouched with nothing logged.
func (s *Session) Apply(guess words.Word, feedback solver.PatternCode) (solver.Status, error) {
	status, err := s.live.ApplyTurn(guess, feedback)
	if err != nil {
		return status, err
	}
	s.turns = append(s.turns, Turn{Guess: guess, Feedback: feedback})
	s.status = status
	return status, nil
}

// Undo removes the last accepted turn and rebuilds the live solver by
// replaying the remaining log over a clone of the pristine base.
// If the log is empty it reports ErrNothingToUndo. Replay of turns
// this session accepted cannot fail; should it ever, the popped turn
// is restored and the session is left exactly as it was.
func (s *Session) Undo() error {
	if len(s.turns) == 0 {
		return ErrNothingToUndo
	}
	popped := s.turns[len(s.turns)-1]
	s.turns = s.turns[:len(s.turns)-1]

	rebuilt, status, err := s.replayTurns()
	if err != nil {
		s.turns = append(s.turns, popped)
		return fmt.Errorf("session: replay after undo: %w", err)
	}
	s.live = rebuilt
	s.status = status
	return nil
}

func (s *Session) replayTurns() (*solver.Solver, solver.Status, error) {
	rebuilt := s.base.Clone()
	status := solver.StatusOngoing
	for _, turn := range s.turns {
		var err error
		status, err = rebuilt.ApplyTurn(turn.Guess, turn.Feedback)
		if err != nil {
			return nil, solver.StatusOngoing, err
		}
	}
	return rebuilt, status, nil
}
