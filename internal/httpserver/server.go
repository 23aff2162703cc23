// internal/httpserver/server.go
//
// HTTP wiring for the solving assistant.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Session endpoints (optional auth): create a session, submit guess
//     feedback, inject manual constraints, list candidates, recommend.
//   - Practice endpoints (optional auth): mounted under /practice.
//   - Auth + stats endpoints (require auth): /auth/*, /stats/me.
//   - Database persistence of session history; best-effort and skipped
//     entirely when the server runs without a database.
//
// Typed core failures map onto statuses: malformed input and bad indexes
// are 400s, an unknown session is a 404, and asking for a recommendation
// from an exhausted candidate set is a 409 with an explicit error body.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/mhollowell/winnow/internal/session"
	"github.com/mhollowell/winnow/internal/solver"
	"github.com/mhollowell/winnow/internal/store"
	"github.com/mhollowell/winnow/internal/words"
)

// Server bundles router, in-memory session store, and DB handle.
// db may be nil; history persistence and auth are then disabled.
type Server struct {
	r     *chi.Mux
	store store.Store
	db    *sql.DB
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, db *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), store: st, db: db}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"winnow","endpoints":["/health","POST /session/new","POST /session/guess","POST /session/constraint","/practice/*","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Session endpoints — OPTIONAL AUTH (anonymous solving is fine)
	withAuth := s.r.With(s.withOptionalAuth())
	withAuth.Post("/session/new", s.handleNewSession)
	withAuth.Post("/session/guess", s.handleGuess)
	withAuth.Post("/session/constraint", s.handleConstraint)
	withAuth.Get("/session/{id}/candidates", s.handleCandidates)
	withAuth.Get("/session/{id}/recommend", s.handleRecommend)
	withAuth.Get("/session/{id}/contains", s.handleContains)

	// Practice + auth need durable storage.
	if s.db != nil {
		s.mountPractice(s.r.With(s.withOptionalAuth()))
		s.mountAuthRoutes()
	}

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
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

// ------------------------------ SESSIONS -----------------------------------

type newSessionReq struct {
	Length int `json:"length"` // word length, 0 means 5
}
type newSessionRes struct {
	SessionID string                 `json:"sessionId"`
	Length    int                    `json:"length"`
	Remaining int                    `json:"remaining"`
	Recommend *solver.Recommendation `json:"recommend,omitempty"`
}

// handleNewSession creates a session over the configured dictionary and
// persists an owner row for history.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	list, err := words.Load(normalizeLength(req.Length))
	if err != nil {
		log.Error().Err(err).Int("length", req.Length).Msg("load word list")
		http.Error(w, `{"error":"no_word_list"}`, http.StatusBadRequest)
		return
	}
	sess := session.New(normalizeLength(req.Length), list)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	s.persistNewSession(w, r, sess)

	res := newSessionRes{SessionID: sess.ID, Length: sess.Length, Remaining: sess.Remaining()}
	if rec, err := sess.Recommend(); err == nil {
		res.Recommend = &rec
	}
	_ = json.NewEncoder(w).Encode(res)
}

type tileJSON struct {
	Letter string `json:"letter"`
	State  string `json:"state"`
}

type guessReq struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`
	Correct   []int  `json:"correct"`
	Misplaced []int  `json:"misplaced"`
}
type guessRes struct {
	Tiles     []tileJSON             `json:"tiles"`
	Remaining int                    `json:"remaining"`
	Solved    bool                   `json:"solved"`
	Recommend *solver.Recommendation `json:"recommend,omitempty"`
}

// handleGuess applies one guess's feedback to a session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	result, err := sess.ApplyGuess(req.Guess, req.Correct, req.Misplaced)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	s.persistGuess(w, r, sess)

	res := guessRes{
		Tiles:     tilesJSON(result.Tiles),
		Remaining: result.Remaining,
		Solved:    result.Solved,
	}
	if rec, err := sess.Recommend(); err == nil {
		res.Recommend = &rec
	}
	_ = json.NewEncoder(w).Encode(res)
}

type constraintReq struct {
	SessionID string `json:"sessionId"`
	Op        string `json:"op"`     // "prune" | "require"
	Letter    string `json:"letter"` // single letter
	Index     *int   `json:"index"`  // optional position
}
type constraintRes struct {
	Remaining int `json:"remaining"`
}

// handleConstraint injects a manual constraint independent of a guess.
func (s *Server) handleConstraint(w http.ResponseWriter, r *http.Request) {
	var req constraintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	var remaining int
	switch {
	case req.Op == "prune" && req.Index == nil:
		remaining, err = sess.Prune(req.Letter)
	case req.Op == "prune":
		remaining, err = sess.PruneAt(req.Letter, *req.Index)
	case req.Op == "require" && req.Index == nil:
		remaining, err = sess.Require(req.Letter)
	case req.Op == "require":
		remaining, err = sess.RequireAt(req.Letter, *req.Index)
	default:
		http.Error(w, `{"error":"unknown_op"}`, http.StatusBadRequest)
		return
	}
	if err != nil {
		writeCoreError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(constraintRes{Remaining: remaining})
}

// handleCandidates lists the remaining words, optionally capped by ?limit=.
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	list := sess.Candidates()
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < len(list) {
			list = list[:n]
		}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"remaining": sess.Remaining(),
		"words":     list,
	})
}

// handleRecommend returns the suggested next guess.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	rec, err := sess.Recommend()
	if err != nil {
		writeCoreError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(rec)
}

// handleContains answers a membership probe: ?word=crane.
func (s *Server) handleContains(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	word := r.URL.Query().Get("word")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"word":     word,
		"contains": sess.Contains(word),
	})
}

// ------------------------------- helpers -----------------------------------

func tilesJSON(tiles []solver.Tile) []tileJSON {
	out := make([]tileJSON, len(tiles))
	for i, t := range tiles {
		out[i] = tileJSON{Letter: string(t.Letter), State: t.State.String()}
	}
	return out
}

// writeCoreError maps the solver's sentinel errors onto HTTP statuses.
func writeCoreError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	code := "bad_request"
	switch {
	case errors.Is(err, solver.ErrNoCandidates):
		status, code = http.StatusConflict, "no_candidates"
	case errors.Is(err, solver.ErrIndexOutOfRange):
		code = "index_out_of_range"
	case errors.Is(err, solver.ErrPositionConflict):
		code = "position_conflict"
	case errors.Is(err, solver.ErrMalformedInput):
		code = "malformed_input"
	}
	body, _ := json.Marshal(map[string]string{"error": code, "detail": err.Error()})
	http.Error(w, string(body), status)
}

func normalizeLength(n int) int {
	if n <= 0 {
		return 5
	}
	return n
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
