package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drewxgarcia/wordle-solver/internal/session"
)

func TestRenderBoardEmpty(t *testing.T) {
	assert.Equal(t, "Board: (empty)", RenderBoard(nil, DefaultStyles()))
}

func TestRenderBoardRows(t *testing.T) {
	turns := []session.Turn{
		{Guess: word(t, "raise"), Feedback: pattern(t, "YYGGG")},
		{Guess: word(t, "arise"), Feedback: pattern(t, "GGGGG")},
	}

	out := RenderBoard(turns, DefaultStyles())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Board:", lines[0])
	assert.Contains(t, lines[1], "1.")
	assert.Contains(t, lines[2], "2.")

	// Letters come out uppercased in guess order regardless of styling.
	rest := lines[1]
	for _, letter := range []string{"R", "A", "I", "S", "E"} {
		i := strings.Index(rest, letter)
		require.GreaterOrEqual(t, i, 0, "missing %s in %q", letter, lines[1])
		rest = rest[i+1:]
	}
}
