// internal/daily/daily.go
//
// Deterministic word-of-the-day selection. Every process with the same
// salt and vocabulary picks the same secret for a given UTC date, with
// no coordination and nothing persisted.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/drewxgarcia/wordle-solver/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using
// HMAC-SHA256(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// First 8 bytes as uint64 for the modulus distribution.
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// Secret picks the day's word from the vocabulary.
func Secret(date time.Time, salt string, vocab []words.Word) (words.Word, error) {
	if len(vocab) == 0 {
		return words.Word{}, words.ErrEmptyWordList
	}
	return vocab[WordIndex(date, salt, len(vocab))], nil
}
