// cmd/wordle-solver/play.go

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/drewxgarcia/wordle-solver/internal/cli"
	"github.com/drewxgarcia/wordle-solver/internal/daily"
	"github.com/drewxgarcia/wordle-solver/internal/session"
	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

var (
	answerFlag string
	dailyFlag  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive game in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		vocab, err := loadVocabulary()
		if err != nil {
			return err
		}
		base, err := solver.NewFromWords(vocab)
		if err != nil {
			return err
		}

		secret, err := pickSecret(base, vocab)
		if err != nil {
			return err
		}

		return cli.RunGame(session.FromSolver(base), secret, cli.NewUI(os.Stdin, os.Stdout))
	},
}

// pickSecret resolves the hidden answer: --answer wins, then --daily,
// then a uniformly random word.
func pickSecret(base *solver.Solver, vocab []words.Word) (words.Word, error) {
	switch {
	case answerFlag != "":
		w, err := words.Parse(answerFlag)
		if err != nil {
			return words.Word{}, err
		}
		if !base.ContainsWord(w) {
			return words.Word{}, fmt.Errorf("answer %q is not in the word list", w.String())
		}
		return w, nil
	case dailyFlag:
		return daily.Secret(time.Now(), getEnv("DAILY_SALT", "local_dev_salt"), vocab)
	default:
		return words.Random(vocab)
	}
}

func init() {
	playCmd.Flags().StringVar(&answerFlag, "answer", "", "fix the hidden answer (must be in the word list)")
	playCmd.Flags().BoolVar(&dailyFlag, "daily", false, "play today's word instead of a random one")
}
