// internal/httpserver/routes_solver.go
//
// Solver-mode endpoints: the client plays Wordle somewhere else and
// reports each turn's feedback here; the server holds no secret and
// only narrows candidates. Hints and undo are shared with game mode.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/drewxgarcia/wordle-solver/internal/game"
	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

// handleNewSolver opens a solver session over the full vocabulary.
func (s *Server) handleNewSolver(w http.ResponseWriter, r *http.Request) {
	g := game.NewExternal(s.newSession())
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save solver session")
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}
	token, err := s.signGameToken(g.ID)
	if err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "token signing failed")
		return
	}

	log.Info().Str("gameId", g.ID).Msg("solver session created")
	_ = json.NewEncoder(w).Encode(newGameRes{Token: token, Snapshot: g.Snapshot()})
}

// solverTurnReq is the payload for POST /solver/turn.
type solverTurnReq struct {
	Token   string `json:"token" validate:"required"`
	Guess   string `json:"guess" validate:"required,len=5,alpha"`
	Pattern string `json:"pattern" validate:"required,len=5"`
}

// handleSolverTurn applies one externally observed (guess, feedback)
// pair. Inconsistent feedback is a conflict and changes nothing, so the
// client can correct the pattern and resubmit.
func (s *Server) handleSolverTurn(w http.ResponseWriter, r *http.Request) {
	var req solverTurnReq
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
	feedback, err := solver.ParsePattern(req.Pattern)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := g.ApplyFeedback(guess, feedback)
	if err != nil {
		writeError(w, engineErrorStatus(err), err.Error())
		return
	}
	s.recordIfFinished(r, g, "solver")

	_ = json.NewEncoder(w).Encode(guessRes{Pattern: feedback.String(), Snapshot: snap})
}
