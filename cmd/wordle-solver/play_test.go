package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

func testBase(t *testing.T) (*solver.Solver, []words.Word) {
	t.Helper()
	vocab := []words.Word{
		words.MustParse("arise"), words.MustParse("raise"),
		words.MustParse("serai"), words.MustParse("irate"),
	}
	base, err := solver.NewFromWords(vocab)
	require.NoError(t, err)
	return base, vocab
}

func TestPickSecretAnswerFlag(t *testing.T) {
	base, vocab := testBase(t)
	defer func() { answerFlag = "" }()

	answerFlag = "ARISE"
	w, err := pickSecret(base, vocab)
	require.NoError(t, err)
	assert.Equal(t, words.MustParse("arise"), w)

	answerFlag = "crane"
	_, err = pickSecret(base, vocab)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the word list")

	answerFlag = "zz"
	_, err = pickSecret(base, vocab)
	assert.ErrorIs(t, err, words.ErrInvalidWord)
}

func TestPickSecretDaily(t *testing.T) {
	base, vocab := testBase(t)
	dailyFlag = true
	defer func() { dailyFlag = false }()

	w, err := pickSecret(base, vocab)
	require.NoError(t, err)
	assert.Contains(t, vocab, w)
}

func TestPickSecretRandomDefault(t *testing.T) {
	base, vocab := testBase(t)

	w, err := pickSecret(base, vocab)
	require.NoError(t, err)
	assert.Contains(t, vocab, w)
}
