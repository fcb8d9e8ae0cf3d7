// cmd/wordle-solver/rank.go

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/drewxgarcia/wordle-solver/internal/solver"
)

var rankCmd = &cobra.Command{
	Use:   "rank [n]",
	Short: "Print the n opening guesses with the highest information gain",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 10
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed < 1 {
				return fmt.Errorf("n must be a positive integer, got %q", args[0])
			}
			n = parsed
		}

		vocab, err := loadVocabulary()
		if err != nil {
			return err
		}
		s, err := solver.NewFromWords(vocab)
		if err != nil {
			return err
		}

		scored := s.ScoredGuesses()
		if n > len(scored) {
			n = len(scored)
		}
		for i := 0; i < n; i++ {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s  %.4f bits\n", i+1, scored[i].Word, scored[i].Score)
		}
		return nil
	},
}
