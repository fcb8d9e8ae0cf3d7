package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

func word(t *testing.T, s string) words.Word {
	t.Helper()
	w, err := words.Parse(s)
	require.NoError(t, err)
	return w
}

func pattern(t *testing.T, s string) solver.PatternCode {
	t.Helper()
	code, err := solver.ParsePattern(s)
	require.NoError(t, err)
	return code
}

func TestParseGameInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want GameInput
	}{
		{"bare guess", "raise", GameInput{Kind: GameGuess, Guess: words.MustParse("raise")}},
		{"guess is normalized", "  RAISE ", GameInput{Kind: GameGuess, Guess: words.MustParse("raise")}},
		{"help", "/help", GameInput{Kind: GameHelp}},
		{"hint default", "/HINT", GameInput{Kind: GameHint, N: 5}},
		{"hint count", "/hint 3", GameInput{Kind: GameHint, N: 3}},
		{"hint clamps to one", "/hint 0", GameInput{Kind: GameHint, N: 1}},
		{"hint ignores garbled count", "/hint x", GameInput{Kind: GameHint, N: 5}},
		{"status", "/status", GameInput{Kind: GameStatus}},
		{"board", "/Board", GameInput{Kind: GameBoard}},
		{"undo", "/undo", GameInput{Kind: GameUndo}},
		{"exit", "/exit", GameInput{Kind: GameExit}},
		{"unknown command", "/quit", GameInput{Kind: GameUnknownCommand}},
		{"too short", "ab", GameInput{Kind: GameInvalidGuess}},
		{"digits", "12345", GameInput{Kind: GameInvalidGuess}},
		{"blank", "   ", GameInput{Kind: GameInvalidGuess}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGameInput(tt.in))
		})
	}
}

func TestParseSolverInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want SolverInput
	}{
		{"feedback", "gybby", SolverInput{Kind: SolverFeedback, Feedback: pattern(t, "GYBBY")}},
		{"feedback upper", " GYBBY ", SolverInput{Kind: SolverFeedback, Feedback: pattern(t, "GYBBY")}},
		{"help", "help", SolverInput{Kind: SolverHelp}},
		{"status", "STATUS", SolverInput{Kind: SolverStatus}},
		{"top default", "top", SolverInput{Kind: SolverTop, N: 10}},
		{"top count", "TOP 3", SolverInput{Kind: SolverTop, N: 3}},
		{"cands count", "cands 2", SolverInput{Kind: SolverCands, N: 2}},
		{"board is a command, not a pattern", "board", SolverInput{Kind: SolverBoard}},
		{"undo", "undo", SolverInput{Kind: SolverUndo}},
		{"exit", "EXIT", SolverInput{Kind: SolverExit}},
		{"garbage", "xyz", SolverInput{Kind: SolverInvalid}},
		{"six pattern chars", "GGGGGG", SolverInput{Kind: SolverInvalid}},
		{"blank", "", SolverInput{Kind: SolverInvalid}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSolverInput(tt.in))
		})
	}
}

func TestTieSet(t *testing.T) {
	a, b, c := word(t, "arise"), word(t, "irate"), word(t, "serai")

	scored := []solver.ScoredGuess{
		{Word: a, Score: 2.0},
		{Word: b, Score: 2.0 - 1e-12},
		{Word: c, Score: 1.5},
	}
	assert.Equal(t, scored[:2], TieSet(scored, scoreEpsilon))

	assert.Empty(t, TieSet(nil, scoreEpsilon))
	single := []solver.ScoredGuess{{Word: a, Score: 1}}
	assert.Equal(t, single, TieSet(single, scoreEpsilon))
}

func TestParseChoice(t *testing.T) {
	tied := []solver.ScoredGuess{
		{Word: word(t, "arise"), Score: 2},
		{Word: word(t, "irate"), Score: 2},
		{Word: word(t, "raise"), Score: 2},
	}

	tests := []struct {
		name   string
		in     string
		want   string
		picked bool
	}{
		{"empty picks top", "", "arise", true},
		{"rank", "2", "irate", true},
		{"rank zero", "0", "", false},
		{"rank past end", "4", "", false},
		{"word", "raise", "raise", true},
		{"word any case", "RAISE", "raise", true},
		{"word not tied", "serai", "", false},
		{"garbage", "xx", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, picked := ParseChoice(tt.in, tied)
			require.Equal(t, tt.picked, picked)
			if tt.picked {
				assert.Equal(t, word(t, tt.want), got)
			}
		})
	}
}
