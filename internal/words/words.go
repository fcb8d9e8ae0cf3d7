// internal/words/words.go
//
// Word codec and vocabulary loading for the solver engine.
//
// Responsibilities:
//   - Parse/render five-letter ASCII words into a fixed value type.
//   - Load newline-delimited vocabulary files with strict validation
//     (every line must parse; errors cite the 1-based line number).
//   - Deduplicate case-insensitively, preserving first occurrence order.
//   - Fall back to the embedded default list when no file is configured.
//
// Constraints:
//   • Words are exactly 5 alphabetic letters (a-z), normalized to lowercase.
//   • The vocabulary order defines the ordinal indexing used by the
//     pattern matrix, so it must be stable across loads of the same file.
//   • Default() is initialized once (sync.Once).

package words

import (
	"bufio"
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sync"

	"github.com/drewxgarcia/wordle-solver/assets"
)

// Size is the fixed word length. Everything in this module assumes it.
const Size = 5

var (
	// ErrInvalidWord reports a token that is not exactly five ASCII letters.
	ErrInvalidWord = errors.New("words: invalid word: expected exactly 5 ASCII letters")

	// ErrEmptyWordList reports a vocabulary that is empty after validation.
	ErrEmptyWordList = errors.New("words: word list is empty after validation")
)

// Word is a five-letter lowercase ASCII word. It is a value type:
// comparable with ==, usable as a map key, ordered by byte sequence.
type Word [Size]byte

// Parse validates and normalizes a token into a Word. The input is
// trimmed; ASCII letters fold to lowercase; anything else is rejected
// with ErrInvalidWord.
func Parse(text string) (Word, error) {
	s := bytes.TrimSpace([]byte(text))
	var w Word
	if len(s) != Size {
		return Word{}, fmt.Errorf("%w: %q", ErrInvalidWord, text)
	}
	for i, b := range s {
		switch {
		case b >= 'a' && b <= 'z':
			w[i] = b
		case b >= 'A' && b <= 'Z':
			w[i] = b + ('a' - 'A')
		default:
			return Word{}, fmt.Errorf("%w: %q", ErrInvalidWord, text)
		}
	}
	return w, nil
}

// MustParse is Parse for known-good literals; it panics on invalid input.
func MustParse(text string) Word {
	w, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return w
}

// String renders the word back to text.
func (w Word) String() string { return string(w[:]) }

// Compare orders words by byte sequence, like bytes.Compare.
func (w Word) Compare(o Word) int { return bytes.Compare(w[:], o[:]) }

// Load reads a vocabulary from a newline-delimited file.
// Every trimmed line must parse as a Word or the load fails citing the
// offending 1-based line. Duplicates are dropped, first occurrence wins.
func Load(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	list, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("words: load %s: %w", path, err)
	}
	return list, nil
}

// LoadReader is Load over an arbitrary reader (embedded data, tests).
func LoadReader(r io.Reader) ([]Word, error) {
	seen := make(map[Word]struct{})
	var list []Word

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		w, err := Parse(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("invalid word at line %d: %w", line, err)
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		list = append(list, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrEmptyWordList
	}
	return list, nil
}

// Dedup drops repeated words, preserving first occurrence order.
// Inputs built by Load are already unique; this guards lists assembled
// by callers.
func Dedup(list []Word) []Word {
	seen := make(map[Word]struct{}, len(list))
	out := make([]Word, 0, len(list))
	for _, w := range list {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

var (
	defaultOnce sync.Once
	defaultList []Word
	defaultErr  error
)

// Default returns the embedded vocabulary, parsed once.
func Default() ([]Word, error) {
	defaultOnce.Do(func() {
		defaultList, defaultErr = LoadReader(bytes.NewReader(assets.WordList))
	})
	return defaultList, defaultErr
}

// Random picks a uniformly random word using crypto/rand.
func Random(list []Word) (Word, error) {
	if len(list) == 0 {
		return Word{}, ErrEmptyWordList
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return Word{}, err
	}
	return list[nBig.Int64()], nil
}
