// internal/httpserver/server.go
//
// HTTP wiring for the solver engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words", "/leaderboard".
//   - Game endpoints: POST /game/new, /game/guess, /game/hints, /game/undo.
//   - Solver endpoints: POST /solver/new, /solver/turn (plus the shared
//     hints/undo routes; a solver session is a game without a secret).
//   - Signed game tokens, payload validation, engine-error -> status mapping.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - The pattern matrix is built once at construction; every game clones
//     candidate state from the shared base solver.
//   - All games live in the in-memory store; nothing survives a restart.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/drewxgarcia/wordle-solver/internal/game"
	"github.com/drewxgarcia/wordle-solver/internal/history"
	"github.com/drewxgarcia/wordle-solver/internal/session"
	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/store"
)

// Server bundles the router, the shared base solver, the live game
// store, and the finished-game history.
type Server struct {
	r        *chi.Mux
	base     *solver.Solver
	store    store.Store
	history  *history.Store
	validate *validator.Validate
	secret   []byte
	salt     string
}

// New constructs a Server over a prebuilt solver, installs middleware,
// and registers routes. hist may be nil; recording and the leaderboard
// are disabled then.
func New(base *solver.Solver, st store.Store, hist *history.Store) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		base:     base,
		store:    st,
		history:  hist,
		validate: validator.New(),
		secret:   []byte(getEnv("JWT_SECRET", "dev_secret_change_me")),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS
	s.r.Use(requestLogger)                   // zerolog route/duration events

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /game/new","POST /game/guess","POST /game/hints","POST /game/undo","POST /solver/new","POST /solver/turn","/leaderboard"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": len(s.base.Candidates())})
	})

	// Game mode: the server holds the secret and computes feedback.
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)

	// Solver mode: the client plays an external game and reports its
	// feedback here.
	s.r.Post("/solver/new", s.handleNewSolver)
	s.r.Post("/solver/turn", s.handleSolverTurn)

	// Shared: both modes rank hints and undo the same way.
	s.r.Post("/game/hints", s.handleHints)
	s.r.Post("/game/undo", s.handleUndo)

	if s.history != nil {
		s.r.Get("/leaderboard", s.handleLeaderboard)
	}

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found: "+r.URL.Path)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger emits one structured event per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------ helpers ------------------------------------

// writeError emits the {"error":"..."} body every failure shares.
func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// decodeAndValidate reads a JSON body into dst and checks its
// validation tags. A false return means the response is already written.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, formatValidationError(err))
		return false
	}
	return true
}

// formatValidationError flattens validator errors into one message.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "len":
			parts = append(parts, field+" must be exactly "+e.Param()+" characters")
		case "alpha":
			parts = append(parts, field+" must contain only letters")
		case "min":
			parts = append(parts, field+" must be at least "+e.Param())
		case "max":
			parts = append(parts, field+" must be at most "+e.Param())
		default:
			parts = append(parts, field+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}

// gameFromToken resolves the request token to a live game. A false
// return means the response is already written.
func (s *Server) gameFromToken(w http.ResponseWriter, r *http.Request, token string) (*game.Game, bool) {
	id, err := s.parseGameToken(token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, ErrInvalidToken.Error())
		return nil, false
	}
	g, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "game not found")
		return nil, false
	}
	return g, true
}

// engineErrorStatus maps per-turn engine and session errors to HTTP
// status codes. Inconsistent feedback and turns against finished games
// are conflicts with current state, not malformed requests.
func engineErrorStatus(err error) int {
	switch {
	case errors.Is(err, solver.ErrInconsistentFeedback),
		errors.Is(err, game.ErrGameFinished),
		errors.Is(err, game.ErrNoSecret),
		errors.Is(err, game.ErrHasSecret):
		return http.StatusConflict
	case errors.Is(err, solver.ErrGuessNotInWordList),
		errors.Is(err, solver.ErrInvalidResultsPattern),
		errors.Is(err, session.ErrNothingToUndo):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// recordIfFinished persists a finished game to the history store.
// Best effort: a history failure never fails the request.
func (s *Server) recordIfFinished(r *http.Request, g *game.Game, mode string) {
	if s.history == nil {
		return
	}
	snap := g.Snapshot()
	if snap.State == "ongoing" {
		return
	}
	err := s.history.Record(r.Context(), history.Result{
		GameID:    g.ID,
		Mode:      mode,
		Date:      g.Date,
		Won:       snap.State == "won",
		Guesses:   snap.Turns,
		ElapsedMs: int(g.Elapsed().Milliseconds()),
	})
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("record finished game")
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// queryInt parses an integer query parameter, falling back to def.
func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// newSession clones candidate state from the shared base solver; the
// pattern matrix itself is shared, never copied.
func (s *Server) newSession() *session.Session {
	return session.FromSolver(s.base)
}
