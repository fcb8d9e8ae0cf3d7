// internal/solver/entropy.go
//
// Shannon-entropy guess ranking over the live candidate set.
//
// For a candidate guess, the remaining candidates are bucketed by the
// feedback pattern the guess would produce; the guess's score is the
// entropy of that distribution, i.e. the expected information gained
// by playing it. Scoring is independent per guess word, so the list is
// chunked across workers and merged by one sequential sort.

package solver

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/drewxgarcia/wordle-solver/internal/words"
)

// ScoredGuess pairs a candidate guess with its entropy in bits.
type ScoredGuess struct {
	Word  words.Word
	Score float64
}

// entropyForGuess computes the entropy of the pattern distribution the
// guess row induces over the candidate ordinals. Empty input scores 0.
func entropyForGuess(rowStart int, matrix []uint8, candidates []int) float64 {
	n := len(candidates)
	if n == 0 {
		return 0
	}

	var buckets [PatternCount]uint32
	for _, targetIdx := range candidates {
		buckets[matrix[rowStart+targetIdx]]++
	}

	nf := float64(n)
	h := 0.0
	for _, c := range buckets {
		if c == 0 {
			continue
		}
		p := float64(c) / nf
		h -= p * math.Log2(p)
	}
	return h
}

// ScoredGuesses ranks every current candidate as a guess, descending by
// entropy with ties broken by ascending word order. Guesses are
// restricted to the live candidates (hard-mode suggestion policy).
// The ordering is deterministic across calls and runs.
func (s *Solver) ScoredGuesses() []ScoredGuess {
	candidates := s.candidateIdx
	out := make([]ScoredGuess, len(candidates))

	workers := runtime.NumCPU()
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers > 1 {
		per := (len(candidates) + workers - 1) / workers
		var g errgroup.Group
		for lo := 0; lo < len(candidates); lo += per {
			hi := lo + per
			if hi > len(candidates) {
				hi = len(candidates)
			}
			lo, hi := lo, hi
			g.Go(func() error {
				s.scoreRange(out, lo, hi)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		s.scoreRange(out, 0, len(candidates))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word.Compare(out[j].Word) < 0
	})
	return out
}

// scoreRange fills out[lo:hi], each worker writing only its own region.
func (s *Solver) scoreRange(out []ScoredGuess, lo, hi int) {
	for i := lo; i < hi; i++ {
		guessIdx := s.candidateIdx[i]
		out[i] = ScoredGuess{
			Word:  s.core.words[guessIdx],
			Score: entropyForGuess(guessIdx*s.core.n, s.core.matrix, s.candidateIdx),
		}
	}
}
