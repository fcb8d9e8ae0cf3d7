// internal/httpserver/routes_game.go
//
// Game-mode endpoints: the server picks (or is told) a secret, computes
// feedback for every guess, and records finished games. The hints,
// undo, and leaderboard handlers here also serve solver-mode sessions.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/drewxgarcia/wordle-solver/internal/daily"
	"github.com/drewxgarcia/wordle-solver/internal/game"
	"github.com/drewxgarcia/wordle-solver/internal/history"
	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Daily  bool   `json:"daily"`
	Answer string `json:"answer" validate:"omitempty,len=5,alpha"` // fixed answer (testing)
}
type newGameRes struct {
	Token string `json:"token"`
	game.Snapshot
}

// handleNewGame creates a game with a server-side secret: the request's
// fixed answer, the deterministic daily word, or a random pick.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	vocab := s.base.Candidates()
	var secret words.Word
	var date string
	switch {
	case req.Answer != "":
		parsed, err := words.Parse(req.Answer)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !s.base.ContainsWord(parsed) {
			writeError(w, http.StatusBadRequest, solver.ErrGuessNotInWordList.Error())
			return
		}
		secret = parsed
	case req.Daily:
		now := time.Now()
		picked, err := daily.Secret(now, s.salt, vocab)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "daily word unavailable")
			return
		}
		secret = picked
		date = daily.DateKey(now)
	default:
		picked, err := words.Random(vocab)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "word list unavailable")
			return
		}
		secret = picked
	}

	g := game.New(s.newSession(), secret)
	if req.Daily {
		g.Daily = true
		g.Date = date
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}
	token, err := s.signGameToken(g.ID)
	if err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "token signing failed")
		return
	}

	log.Info().Str("gameId", g.ID).Bool("daily", g.Daily).Msg("game created")
	_ = json.NewEncoder(w).Encode(newGameRes{Token: token, Snapshot: g.Snapshot()})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	Token string `json:"token" validate:"required"`
	Guess string `json:"guess" validate:"required,len=5,alpha"`
}
type guessRes struct {
	Pattern string `json:"pattern"`
	game.Snapshot
}

// handleGuess plays one game-mode turn: the guess is codec-validated,
// feedback is simulated against the secret, and the turn is applied.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	g, ok := s.gameFromToken(w, r, req.Token)
	if !ok {
		return
	}

	guess, err := words.Parse(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	feedback, snap, err := g.Guess(guess)
	if err != nil {
		writeError(w, engineErrorStatus(err), err.Error())
		return
	}
	s.recordIfFinished(r, g, "game")

	_ = json.NewEncoder(w).Encode(guessRes{Pattern: feedback.String(), Snapshot: snap})
}

// hintsReq/Res payloads for POST /game/hints.
type hintsReq struct {
	Token string `json:"token" validate:"required"`
	N     int    `json:"n" validate:"omitempty,min=1,max=100"`
}
type hintEntry struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}
type hintsRes struct {
	Hints []hintEntry `json:"hints"`
}

// handleHints returns the top n entropy-ranked guesses (default 5).
func (s *Server) handleHints(w http.ResponseWriter, r *http.Request) {
	var req hintsReq
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	g, ok := s.gameFromToken(w, r, req.Token)
	if !ok {
		return
	}

	n := req.N
	if n == 0 {
		n = 5
	}
	scored := g.Hints(n)
	hints := make([]hintEntry, 0, len(scored))
	for _, sg := range scored {
		hints = append(hints, hintEntry{Word: sg.Word.String(), Score: sg.Score})
	}
	_ = json.NewEncoder(w).Encode(hintsRes{Hints: hints})
}

// undoReq is the payload for POST /game/undo.
type undoReq struct {
	Token string `json:"token" validate:"required"`
}

// handleUndo reverts the last accepted turn; a finished game reopens.
func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req undoReq
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	g, ok := s.gameFromToken(w, r, req.Token)
	if !ok {
		return
	}

	snap, err := g.Undo()
	if err != nil {
		writeError(w, engineErrorStatus(err), err.Error())
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// leaderboardRes is returned by GET /leaderboard.
type leaderboardRes struct {
	Date string        `json:"date,omitempty"`
	Top  []history.Row `json:"top"`
}

// handleLeaderboard returns the fastest recorded wins; ?date= restricts
// the board to one daily key, ?limit= caps the rows (default 20).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	limit := queryInt(r, "limit", 20)

	top, err := s.history.Leaderboard(r.Context(), date, limit)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard query")
		writeError(w, http.StatusInternalServerError, "leaderboard unavailable")
		return
	}
	_ = json.NewEncoder(w).Encode(leaderboardRes{Date: date, Top: top})
}
