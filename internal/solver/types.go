// internal/solver/types.go
//
// Shared types for the solver engine.
// Defines:
//   - Status: coarse game state (ongoing/won/lost).
//   - The per-turn error taxonomy. Every error below leaves solver
//     state untouched, so the same turn can be retried.

package solver

import "errors"

// Status represents the coarse state of a game after a turn.
type Status uint8

const (
	StatusOngoing Status = iota
	StatusWon
	StatusLost
)

// String reports the wire/display form used by the HTTP and CLI layers.
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "ongoing"
	}
}

var (
	// ErrInvalidResultsPattern reports feedback that is not a valid
	// pattern: out of the [0,243) code range, or a string that is not
	// exactly 5 characters from G, Y, and B.
	ErrInvalidResultsPattern = errors.New("invalid results: use exactly 5 characters from G, Y, and B")

	// ErrGuessNotInWordList reports a guess outside the loaded vocabulary.
	ErrGuessNotInWordList = errors.New("guess is not in the solver word list")

	// ErrInconsistentFeedback reports a guess/pattern pair no remaining
	// candidate can satisfy.
	ErrInconsistentFeedback = errors.New("inconsistent feedback: no candidate matches that guess/pattern pair")
)
