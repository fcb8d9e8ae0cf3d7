// cmd/wordle-solver/serve.go

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/drewxgarcia/wordle-solver/internal/history"
	"github.com/drewxgarcia/wordle-solver/internal/httpserver"
	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/store"
)

var portFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the engine as a JSON HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		vocab, err := loadVocabulary()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load word list")
		}
		base, err := solver.NewFromWords(vocab)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build solver")
		}

		hist, err := history.Open(getEnv("HISTORY_DSN", history.MemoryDSN))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open history store")
		}
		defer hist.Close()

		srv := httpserver.New(base, store.NewMemoryStore(), hist)

		port := portFlag
		if port == "" {
			port = getEnv("PORT", "5175")
		}
		log.Info().Str("port", port).Int("words", len(vocab)).Msg("starting wordle-solver api")
		if err := srv.Start(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&portFlag, "port", "", "TCP port to listen on (default: PORT env var or 5175)")
}
