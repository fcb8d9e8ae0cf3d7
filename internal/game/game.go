// internal/game/game.go
//
// Game aggregate served over HTTP: one engine session plus the secret
// (when the server holds one), identity, and timing.
// Responsibilities:
//   - Game mode: simulate oracle feedback for a guess against the
//     hidden secret, then apply the turn.
//   - Solver mode: apply externally supplied feedback (no secret held).
//   - Expose hints, undo, and a JSON-shaped snapshot of the board.
//
// A game serializes its own access with a mutex, so concurrent
// requests against the same ID are safe. The engine itself stays
// single-owner underneath the lock.

package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/drewxgarcia/wordle-solver/internal/session"
	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

var (
	// ErrGameFinished reports a turn against a won or lost game.
	ErrGameFinished = errors.New("game finished")

	// ErrNoSecret reports a simulated guess against a solver-mode game.
	ErrNoSecret = errors.New("game holds no secret; submit feedback instead")

	// ErrHasSecret reports external feedback against a game whose
	// feedback is computed server-side.
	ErrHasSecret = errors.New("game computes its own feedback; submit a guess instead")
)

// Game holds the state of a single game or solver session.
type Game struct {
	ID        string
	Daily     bool
	Date      string // daily date key, empty otherwise
	StartedAt time.Time

	mu         sync.Mutex
	secret     words.Word
	hasSecret  bool
	sess       *session.Session
	finishedAt time.Time
}

// New constructs a game-mode instance: the server keeps the secret and
// computes feedback for every guess.
func New(sess *session.Session, secret words.Word) *Game {
	return &Game{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		secret:    secret,
		hasSecret: true,
		sess:      sess,
	}
}

// NewExternal constructs a solver-mode instance: the caller plays an
// external game and reports its feedback here.
func NewExternal(sess *session.Session) *Game {
	return &Game{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		sess:      sess,
	}
}

// Row is one board line in a snapshot.
type Row struct {
	Guess   string `json:"guess"`
	Pattern string `json:"pattern"`
}

// Snapshot is the JSON-shaped view of a game returned by the API.
type Snapshot struct {
	ID             string `json:"gameId"`
	State          string `json:"state"`
	Turns          int    `json:"turns"`
	MaxTurns       int    `json:"maxTurns"`
	Attempt        int    `json:"attempt"`
	CandidatesLeft int    `json:"candidatesLeft"`
	Daily          bool   `json:"daily,omitempty"`
	Date           string `json:"date,omitempty"`
	Board          []Row  `json:"board"`
	Answer         string `json:"answer,omitempty"`
}

// Guess plays one game-mode turn: feedback is simulated against the
// secret, then the turn is applied. The returned pattern is this
// turn's feedback.
func (g *Game) Guess(w words.Word) (solver.PatternCode, Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasSecret {
		return 0, g.snapshotLocked(), ErrNoSecret
	}
	if g.finishedLocked() {
		return 0, g.snapshotLocked(), ErrGameFinished
	}

	feedback := solver.Simulate(w, g.secret)
	status, err := g.sess.Apply(w, feedback)
	if err != nil {
		return 0, g.snapshotLocked(), err
	}
	if status != solver.StatusOngoing {
		g.finishedAt = time.Now().UTC()
	}
	return feedback, g.snapshotLocked(), nil
}

// ApplyFeedback plays one solver-mode turn with feedback from an
// external game.
func (g *Game) ApplyFeedback(w words.Word, feedback solver.PatternCode) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.hasSecret {
		return g.snapshotLocked(), ErrHasSecret
	}
	if g.finishedLocked() {
		return g.snapshotLocked(), ErrGameFinished
	}

	status, err := g.sess.Apply(w, feedback)
	if err != nil {
		return g.snapshotLocked(), err
	}
	if status != solver.StatusOngoing {
		g.finishedAt = time.Now().UTC()
	}
	return g.snapshotLocked(), nil
}

// Hints returns the top n ranked guesses for the live candidate set.
func (g *Game) Hints(n int) []solver.ScoredGuess {
	g.mu.Lock()
	defer g.mu.Unlock()

	scored := g.sess.Solver().ScoredGuesses()
	if n < len(scored) {
		scored = scored[:n]
	}
	return scored
}

// Undo reverts the last accepted turn. A finished game reopens.
func (g *Game) Undo() (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.sess.Undo(); err != nil {
		return g.snapshotLocked(), err
	}
	g.finishedAt = time.Time{}
	return g.snapshotLocked(), nil
}

// Snapshot reports the current game view.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// Won reports whether the game finished with a win.
func (g *Game) Won() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sess.Status() == solver.StatusWon
}

// Elapsed is the wall time from start to finish; zero while ongoing.
func (g *Game) Elapsed() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.finishedAt.IsZero() {
		return 0
	}
	return g.finishedAt.Sub(g.StartedAt)
}

func (g *Game) finishedLocked() bool {
	return g.sess.Status() != solver.StatusOngoing
}

func (g *Game) snapshotLocked() Snapshot {
	sv := g.sess.Solver()
	turns := g.sess.Turns()

	board := make([]Row, 0, len(turns))
	for _, t := range turns {
		board = append(board, Row{Guess: t.Guess.String(), Pattern: t.Feedback.String()})
	}

	snap := Snapshot{
		ID:             g.ID,
		State:          g.sess.Status().String(),
		Turns:          len(turns),
		MaxTurns:       sv.MaxAttempts(),
		Attempt:        sv.AttemptNumber(),
		CandidatesLeft: len(sv.Candidates()),
		Daily:          g.Daily,
		Date:           g.Date,
		Board:          board,
	}
	// The secret is revealed only once the game is over.
	if g.hasSecret && g.finishedLocked() {
		snap.Answer = g.secret.String()
	}
	return snap
}
