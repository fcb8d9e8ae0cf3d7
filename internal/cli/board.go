// internal/cli/board.go
//
// Board rendering: the accepted turn log as rows of colored tiles.

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drewxgarcia/wordle-solver/internal/session"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

// RenderBoard formats the turn log as one tile row per accepted guess,
// oldest first. Tile colors follow the base-3 feedback digits.
func RenderBoard(turns []session.Turn, st Styles) string {
	if len(turns) == 0 {
		return "Board: (empty)"
	}

	var b strings.Builder
	b.WriteString("Board:")
	for i, t := range turns {
		fmt.Fprintf(&b, "\n  %2d. %s", i+1, renderTiles(t, st))
	}
	return b.String()
}

func renderTiles(t session.Turn, st Styles) string {
	code := t.Feedback
	var b strings.Builder
	for i := 0; i < words.Size; i++ {
		var tile lipgloss.Style
		switch code % 3 {
		case 2:
			tile = st.TileCorrect
		case 1:
			tile = st.TilePresent
		default:
			tile = st.TileAbsent
		}
		code /= 3
		b.WriteString(tile.Render(strings.ToUpper(string(t.Guess[i]))))
	}
	return b.String()
}
