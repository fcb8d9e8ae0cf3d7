// internal/cli/game.go
//
// Interactive play mode: the program holds a hidden answer, the user
// guesses, feedback comes back as colored tiles.

package cli

import (
	"fmt"
	"strings"

	"github.com/drewxgarcia/wordle-solver/internal/session"
	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

// RunGame drives one game to completion. The secret must be a word the
// session's vocabulary contains, which keeps every simulated feedback
// consistent with the candidate set.
func RunGame(sess *session.Session, secret words.Word, ui *UI) error {
	ui.Printf("%s\n", ui.styles.Title.Render("Wordle"))
	ui.Printf("Guess the hidden 5-letter word. Type /HELP for commands.\n")

	for sess.Status() == solver.StatusOngoing {
		ui.Printf("\n")
		ui.printBoard(sess.Turns())
		ui.printStatus(sess)
		ui.Printf("Guess: ")

		line, ok := ui.ReadLine()
		if !ok {
			ui.Printf("\n")
			return ui.Err()
		}

		in := ParseGameInput(line)
		switch in.Kind {
		case GameHelp:
			ui.printCommands(gameCommands)
		case GameHint:
			ui.printTopWords(sess.Solver().ScoredGuesses(), in.N)
		case GameStatus:
			ui.printStatus(sess)
		case GameBoard:
			ui.printBoard(sess.Turns())
		case GameUndo:
			if err := sess.Undo(); err != nil {
				ui.Printf("%s\n", ui.styles.Error.Render(err.Error()))
				continue
			}
			ui.Printf("Reverted the last guess.\n")
		case GameExit:
			ui.Printf("Bye.\n")
			return nil
		case GameUnknownCommand:
			ui.Printf("Unknown command. Type /HELP for the command list.\n")
		case GameInvalidGuess:
			ui.Printf("Please enter a 5-letter word or a /command.\n")
		case GameGuess:
			if !sess.Solver().ContainsWord(in.Guess) {
				ui.Printf("'%s' is not in the allowed word list.\n", in.Guess)
				continue
			}
			code := solver.Simulate(in.Guess, secret)
			if _, err := sess.Apply(in.Guess, code); err != nil {
				ui.Printf("%s\n", ui.styles.Error.Render(err.Error()))
				continue
			}
			ui.Printf("%s\n", renderTiles(session.Turn{Guess: in.Guess, Feedback: code}, ui.styles))
		}
	}

	ui.Printf("\n")
	ui.printBoard(sess.Turns())
	switch sess.Status() {
	case solver.StatusWon:
		n := len(sess.Turns())
		noun := "turns"
		if n == 1 {
			noun = "turn"
		}
		ui.Printf("%s\n", ui.styles.Success.Render(fmt.Sprintf("You solved it in %d %s!", n, noun)))
	case solver.StatusLost:
		ui.Printf("Out of turns.\n")
	}
	ui.Printf("Answer: %s\n", strings.ToUpper(secret.String()))
	return nil
}
