// cmd/wordle-solver/solve.go

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/drewxgarcia/wordle-solver/internal/cli"
	"github.com/drewxgarcia/wordle-solver/internal/session"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Suggest guesses for a game you are playing elsewhere",
	Long: `Solve assists with an external Wordle game. It suggests the guess with
the highest expected information gain; you play it and type back the
feedback colors (G=green, Y=yellow, B=gray) until the game resolves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vocab, err := loadVocabulary()
		if err != nil {
			return err
		}
		sess, err := session.NewFromWords(vocab)
		if err != nil {
			return err
		}
		return cli.RunSolver(sess, cli.NewUI(os.Stdin, os.Stdout))
	},
}
