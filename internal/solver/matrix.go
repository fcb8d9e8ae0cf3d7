// internal/solver/matrix.go
//
// Precomputed pattern matrix shared by every solver over one vocabulary.
//
// The matrix holds the oracle result for every ordered (guess, target)
// pair: matrix[guess*n+target]. Building it is the dominant load-time
// cost at O(N²) oracle calls, so rows are split across workers; each
// worker writes only its own rows, no synchronization needed. After
// construction the core is never mutated, which is what makes sharing
// it by pointer across solver clones safe.

package solver

import (
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/drewxgarcia/wordle-solver/internal/words"
)

// core bundles the vocabulary, its ordinal lookup, and the pattern
// matrix into one immutable value. Solvers share it by pointer; cloning
// a solver never copies the matrix.
type core struct {
	words  []words.Word
	index  map[words.Word]int
	matrix []uint8 // row-major: guess ordinal * wordCount + target ordinal
	n      int
}

func newCore(list []words.Word) *core {
	n := len(list)
	index := make(map[words.Word]int, n)
	for i, w := range list {
		if _, dup := index[w]; !dup {
			index[w] = i
		}
	}
	start := time.Now()
	matrix := buildMatrix(list)
	log.Debug().
		Int("words", n).
		Dur("took", time.Since(start)).
		Msg("pattern matrix built")
	return &core{words: list, index: index, matrix: matrix, n: n}
}

// buildMatrix computes all N² oracle codes. Rows are partitioned into
// contiguous ranges, one worker per range; codes fit in a byte.
func buildMatrix(list []words.Word) []uint8 {
	n := len(list)
	if n == 0 {
		return nil
	}
	matrix := make([]uint8, n*n)

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	rowsPer := (n + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < n; lo += rowsPer {
		hi := lo + rowsPer
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			for guessIdx := lo; guessIdx < hi; guessIdx++ {
				row := matrix[guessIdx*n : guessIdx*n+n]
				guess := list[guessIdx]
				for targetIdx, target := range list {
					row[targetIdx] = uint8(Simulate(guess, target))
				}
			}
			return nil
		})
	}
	// Workers are pure writes over disjoint rows; they cannot fail.
	_ = g.Wait()
	return matrix
}
