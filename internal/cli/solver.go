// internal/cli/solver.go
//
// Assisted mode: the program ranks guesses for a game played somewhere
// else. The user plays a suggestion, types the feedback they observed,
// and the candidate set narrows until the game resolves.

package cli

import (
	"github.com/drewxgarcia/wordle-solver/internal/session"
	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

const (
	// Scores this close count as tied; entropies of equal-sized bucket
	// splits differ only by float rounding.
	scoreEpsilon = 1e-10

	tieListLimit = 10
)

// RunSolver drives assisted mode to completion.
func RunSolver(sess *session.Session, ui *UI) error {
	ui.Printf("%s\n", ui.styles.Title.Render("Wordle solver"))
	ui.Printf("Play the suggested word, then enter the feedback you saw (G/Y/B). Type HELP for commands.\n")

turns:
	for sess.Status() == solver.StatusOngoing {
		ui.Printf("\n")
		ui.printStatus(sess)

		scored := sess.Solver().ScoredGuesses()
		tied := TieSet(scored, scoreEpsilon)

		var guess words.Word
		if len(tied) > 1 {
			ui.Printf("Multiple top-ranked guesses (%d total):\n", len(tied))
			ui.printTopWords(tied, tieListLimit)
			if rest := len(tied) - tieListLimit; rest > 0 {
				ui.Printf("  ... +%d more\n", rest)
			}
			for {
				ui.Printf("Pick a guess [1-%d]: ", len(tied))
				line, ok := ui.ReadLine()
				if !ok {
					ui.Printf("\n")
					return ui.Err()
				}
				w, picked := ParseChoice(line, tied)
				if picked {
					guess = w
					break
				}
				ui.Printf("Enter a rank between 1 and %d, one of the listed words, or press Enter for #1.\n", len(tied))
			}
		} else {
			guess = scored[0].Word
			ui.Printf("Suggested guess: %s  (%.4f bits)\n", guess, scored[0].Score)
		}

		for {
			ui.Printf("Feedback for '%s' (G/Y/B): ", guess)
			line, ok := ui.ReadLine()
			if !ok {
				ui.Printf("\n")
				return ui.Err()
			}

			in := ParseSolverInput(line)
			switch in.Kind {
			case SolverFeedback:
				if _, err := sess.Apply(guess, in.Feedback); err != nil {
					ui.Printf("%s\n", ui.styles.Error.Render(err.Error()))
					ui.Printf("State unchanged. Please re-enter feedback for the same guess.\n")
					continue
				}
				continue turns
			case SolverHelp:
				ui.printCommands(solverCommands)
			case SolverStatus:
				ui.printStatus(sess)
			case SolverTop:
				ui.printTopWords(scored, in.N)
			case SolverCands:
				ui.printFirstWords(sess.Solver().Candidates(), in.N)
			case SolverBoard:
				ui.printBoard(sess.Turns())
			case SolverUndo:
				if err := sess.Undo(); err != nil {
					ui.Printf("%s\n", ui.styles.Error.Render(err.Error()))
					continue
				}
				ui.Printf("Reverted the last turn.\n")
				continue turns
			case SolverExit:
				ui.Printf("Bye.\n")
				return nil
			default:
				ui.Printf("Enter 5 letters of G/Y/B (e.g. GYBBY) or HELP.\n")
			}
		}
	}

	ui.Printf("\n")
	ui.printBoard(sess.Turns())
	switch sess.Status() {
	case solver.StatusWon:
		ui.Printf("%s\n", ui.styles.Success.Render("Congratulations, you won!"))
	case solver.StatusLost:
		ui.Printf("Game over. Better luck next time!\n")
	}
	return nil
}
