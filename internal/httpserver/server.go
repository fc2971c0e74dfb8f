// apps/go-cli/internal/httpserver/server.go
//
// HTTP front-end for the play service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     request logging).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game.
//   - Mapping service errors to JSON error bodies and status codes.
//
// Notes:
//   - There is exactly one game per server (one player). The play.Service is
//     not goroutine-safe, so every handler that touches it holds s.mu.
//   - The answer is only returned once the round is finished.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/play"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// Server bundles the router and the play service it drives.
type Server struct {
	r      *chi.Mux
	mu     sync.Mutex // guards svc
	svc    *play.Service
	origin string
}

// New constructs a Server, installs middleware, and registers routes.
// origin is the single CORS origin allowed to send credentials.
func New(svc *play.Service, origin string) *Server {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), svc: svc, origin: origin}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-go","endpoints":["/health","POST /game/new","POST /game/guess","GET /game"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", s.handleWordStats)

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game", s.handleState)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorRes{Error: "not_found", Message: r.URL.Path})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- hs.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs method, path, status and latency at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("http")
	})
}

// ------------------------------ GAME ---------------------------------------

type errorRes struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type newGameRes struct {
	SessionID string `json:"sessionId"`
	Remaining int    `json:"remaining"`
}

// handleNewGame starts a new round, discarding any current one.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.svc.StartGame()
	st := s.svc.Snapshot()
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameRes{SessionID: st.SessionID, Remaining: st.Remaining})
}

type guessReq struct {
	Guess string `json:"guess"`
}

type guessRes struct {
	Marks     []game.LetterResult `json:"marks"`
	State     string              `json:"state"` // "playing" | "won" | "lost"
	Remaining int                 `json:"remaining"`
	Answer    string              `json:"answer,omitempty"`
}

// handleGuess applies a guess to the current round and returns its feedback.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_json"})
		return
	}

	s.mu.Lock()
	marks, err := s.svc.SubmitGuess(req.Guess)
	st := s.svc.Snapshot()
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guessRes{Marks: marks, State: st.Status, Remaining: st.Remaining, Answer: st.Answer})
}

// handleState returns a snapshot of the current round.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	st := s.svc.Snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, st)
}

// handleWordStats reports how many words are loaded.
func (s *Server) handleWordStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	n := s.svc.WordCount()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]int{"words": n})
}

// ------------------------------- errors ------------------------------------

// statusFor maps service errors to an HTTP status and a stable error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		return http.StatusBadRequest, "invalid_guess"
	case errors.Is(err, game.ErrDuplicateGuess):
		return http.StatusBadRequest, "duplicate_guess"
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict, "game_over"
	case errors.Is(err, play.ErrNoActiveSession):
		return http.StatusConflict, "no_active_game"
	case errors.Is(err, words.ErrEmptyWordList):
		return http.StatusInternalServerError, "empty_word_list"
	case errors.Is(err, words.ErrWordLoading):
		return http.StatusInternalServerError, "word_loading"
	}
	return http.StatusInternalServerError, "internal"
}

func writeError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("code", code).Msg("request failed")
	}
	writeJSON(w, status, errorRes{Error: code, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
