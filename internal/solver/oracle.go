// internal/solver/oracle.go
//
// Feedback oracle: computes Wordle-style feedback for a guess against a
// target word, encoded compactly as a base-3 pattern code.
//
// Pattern encoding:
//   - Each position holds a digit: 0=absent (B), 1=present (Y), 2=correct (G).
//   - Digit i carries weight 3^i, so position 0 is the least-significant
//     digit and codes range over [0,243).
//   - AllGreen (242) is the all-correct code.
//
// The two-pass algorithm is required for correct duplicate-letter
// behavior: greens consume target letters across the whole word before
// any yellow is assigned. A single left-to-right pass over-assigns
// yellows when the guess repeats a letter.

package solver

import (
	"fmt"

	"github.com/drewxgarcia/wordle-solver/internal/words"
)

// PatternCode is a feedback pattern packed into one base-3 integer.
type PatternCode uint16

const (
	// PatternCount is the number of distinct feedback patterns: 3^5.
	PatternCount = 243

	// AllGreen is the all-correct pattern code.
	AllGreen PatternCode = 242
)

// Per-position digit values.
const (
	digitAbsent  = 0
	digitPresent = 1
	digitCorrect = 2
)

// Simulate computes the feedback pattern the guess would receive against
// the target. Deterministic and pure.
func Simulate(guess, target words.Word) PatternCode {
	// Letter frequency of the target for the non-green positions (a-z).
	var counts [26]int
	for _, b := range target {
		counts[b-'a']++
	}

	var state [words.Size]uint8

	// Pass 1: greens, consuming from the target multiset.
	for i := 0; i < words.Size; i++ {
		if guess[i] == target[i] {
			state[i] = digitCorrect
			counts[guess[i]-'a']--
		}
	}

	// Pass 2: yellows, left to right, only while letters remain.
	for i := 0; i < words.Size; i++ {
		if state[i] != digitAbsent {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			state[i] = digitPresent
			counts[j]--
		}
	}

	// Pack base-3, position 0 least significant.
	var code, pow PatternCode = 0, 1
	for _, digit := range state {
		code += PatternCode(digit) * pow
		pow *= 3
	}
	return code
}

// ParsePattern decodes a 5-character G/Y/B string (case-insensitive)
// into a PatternCode. Rejects any other input with ErrInvalidResultsPattern.
func ParsePattern(results string) (PatternCode, error) {
	if len(results) != words.Size {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidResultsPattern, results)
	}
	var code, pow PatternCode = 0, 1
	for i := 0; i < words.Size; i++ {
		var digit PatternCode
		switch results[i] {
		case 'B', 'b':
			digit = digitAbsent
		case 'Y', 'y':
			digit = digitPresent
		case 'G', 'g':
			digit = digitCorrect
		default:
			return 0, fmt.Errorf("%w (got %q)", ErrInvalidResultsPattern, results)
		}
		code += digit * pow
		pow *= 3
	}
	return code, nil
}

// String renders the code as the uppercase 5-character G/Y/B form.
// Inverse of ParsePattern for in-range codes.
func (c PatternCode) String() string {
	var out [words.Size]byte
	for i := range out {
		switch c % 3 {
		case digitPresent:
			out[i] = 'Y'
		case digitCorrect:
			out[i] = 'G'
		default:
			out[i] = 'B'
		}
		c /= 3
	}
	return string(out[:])
}

// Valid reports whether the code is inside the [0,PatternCount) range.
func (c PatternCode) Valid() bool { return int(c) < PatternCount }
