// cmd/wordle-solver/main.go
//
// Entry point: command tree plus the environment and vocabulary
// plumbing every subcommand shares.

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/drewxgarcia/wordle-solver/internal/words"
)

var wordlistFlag string

var rootCmd = &cobra.Command{
	Use:   "wordle-solver",
	Short: "Play Wordle, get entropy-ranked suggestions, or serve the engine over HTTP",
	Long: `wordle-solver plays Wordle and helps you win it.

  play   interactive game in the terminal
  solve  suggests guesses for a game played elsewhere
  rank   prints the strongest opening guesses
  serve  exposes the engine as a JSON HTTP API`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
	},
}

// loadVocabulary resolves the word list: --wordlist beats the
// WORDLIST_FILE env var, which beats the embedded list.
func loadVocabulary() ([]words.Word, error) {
	path := wordlistFlag
	if path == "" {
		path = os.Getenv("WORDLIST_FILE")
	}
	if path == "" {
		return words.Default()
	}
	return words.Load(path)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func init() {
	rootCmd.PersistentFlags().StringVar(&wordlistFlag, "wordlist", "",
		"path to a newline-delimited word list (default: embedded list)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
