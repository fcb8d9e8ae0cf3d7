// internal/cli/commands.go
//
// Input parsing for the interactive modes. Everything here is pure so
// the prompt loops stay thin and the grammar stays table-testable.
//
// Game mode reads guesses directly and slash-prefixed commands
// ("/HINT 3"). Solver mode reads feedback patterns directly (anything
// that parses as 5 G/Y/B characters) and bare-word commands ("TOP 3").

package cli

import (
	"strconv"
	"strings"

	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

// Command names one mode command for help and prompt summaries.
type Command struct {
	Name string
	Help string
}

var gameCommands = []Command{
	{"/HELP", "Show this command list"},
	{"/HINT [n]", "Show top n suggested guesses (default 5)"},
	{"/STATUS", "Show turn/candidate status"},
	{"/BOARD", "Reprint the board"},
	{"/UNDO", "Undo the previous accepted guess"},
	{"/EXIT", "Quit the game"},
}

var solverCommands = []Command{
	{"HELP", "Show this command list"},
	{"STATUS", "Show turn and candidate status"},
	{"TOP [n]", "Show top n suggestions (default 10)"},
	{"CANDS [n]", "Show first n remaining candidates (default 10)"},
	{"BOARD", "Show guess history with colored feedback"},
	{"UNDO", "Revert the previous accepted turn"},
	{"EXIT", "Quit solver mode"},
}

// GameInputKind tags one parsed game-mode line.
type GameInputKind int

const (
	GameGuess GameInputKind = iota
	GameHelp
	GameHint
	GameStatus
	GameBoard
	GameUndo
	GameExit
	GameUnknownCommand
	GameInvalidGuess
)

// GameInput is one parsed game-mode line.
type GameInput struct {
	Kind  GameInputKind
	Guess words.Word // GameGuess only
	N     int        // GameHint only
}

// ParseGameInput classifies a game-mode line: a slash command or a
// 5-letter guess.
func ParseGameInput(raw string) GameInput {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return GameInput{Kind: GameInvalidGuess}
	}

	if rest, isCmd := strings.CutPrefix(trimmed, "/"); isCmd {
		cmd, n := splitCommand(rest, 5)
		switch cmd {
		case "HELP":
			return GameInput{Kind: GameHelp}
		case "HINT":
			return GameInput{Kind: GameHint, N: n}
		case "STATUS":
			return GameInput{Kind: GameStatus}
		case "BOARD":
			return GameInput{Kind: GameBoard}
		case "UNDO":
			return GameInput{Kind: GameUndo}
		case "EXIT":
			return GameInput{Kind: GameExit}
		default:
			return GameInput{Kind: GameUnknownCommand}
		}
	}

	w, err := words.Parse(trimmed)
	if err != nil {
		return GameInput{Kind: GameInvalidGuess}
	}
	return GameInput{Kind: GameGuess, Guess: w}
}

// SolverInputKind tags one parsed feedback-prompt line.
type SolverInputKind int

const (
	SolverFeedback SolverInputKind = iota
	SolverHelp
	SolverStatus
	SolverTop
	SolverCands
	SolverBoard
	SolverUndo
	SolverExit
	SolverInvalid
)

// SolverInput is one parsed feedback-prompt line.
type SolverInput struct {
	Kind     SolverInputKind
	Feedback solver.PatternCode // SolverFeedback only
	N        int                // SolverTop / SolverCands only
}

// ParseSolverInput classifies a feedback-prompt line. A valid G/Y/B
// pattern wins over command matching, so no command may collide with
// the pattern alphabet.
func ParseSolverInput(raw string) SolverInput {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SolverInput{Kind: SolverInvalid}
	}

	if code, err := solver.ParsePattern(trimmed); err == nil {
		return SolverInput{Kind: SolverFeedback, Feedback: code}
	}

	cmd, n := splitCommand(trimmed, 10)
	switch cmd {
	case "HELP":
		return SolverInput{Kind: SolverHelp}
	case "STATUS":
		return SolverInput{Kind: SolverStatus}
	case "TOP":
		return SolverInput{Kind: SolverTop, N: n}
	case "CANDS":
		return SolverInput{Kind: SolverCands, N: n}
	case "BOARD":
		return SolverInput{Kind: SolverBoard}
	case "UNDO":
		return SolverInput{Kind: SolverUndo}
	case "EXIT":
		return SolverInput{Kind: SolverExit}
	default:
		return SolverInput{Kind: SolverInvalid}
	}
}

// splitCommand uppercases a command line and extracts its numeric
// argument, clamped to at least 1, defaulting when absent or garbled.
func splitCommand(s string, def int) (string, int) {
	fields := strings.Fields(strings.ToUpper(s))
	if len(fields) == 0 {
		return "", def
	}
	n := def
	if len(fields) > 1 {
		if parsed, err := strconv.Atoi(fields[1]); err == nil {
			n = parsed
		}
	}
	if n < 1 {
		n = 1
	}
	return fields[0], n
}

// TieSet returns the leading run of guesses whose score is within eps
// of the top score. The input must already be sorted descending.
func TieSet(scored []solver.ScoredGuess, eps float64) []solver.ScoredGuess {
	if len(scored) == 0 {
		return nil
	}
	best := scored[0].Score
	end := 1
	for end < len(scored) && best-scored[end].Score <= eps {
		end++
	}
	return scored[:end]
}

// ParseChoice resolves a tie-break selection: empty input takes the
// top suggestion, a number picks by rank, and a word picks itself if
// it is among the tied guesses.
func ParseChoice(raw string, tied []solver.ScoredGuess) (words.Word, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return tied[0].Word, true
	}
	if k, err := strconv.Atoi(trimmed); err == nil {
		if k >= 1 && k <= len(tied) {
			return tied[k-1].Word, true
		}
		return words.Word{}, false
	}
	if w, err := words.Parse(trimmed); err == nil {
		for _, sg := range tied {
			if sg.Word == w {
				return w, true
			}
		}
	}
	return words.Word{}, false
}
