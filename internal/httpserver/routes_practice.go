// internal/httpserver/routes_practice.go
//
// Daily practice mode: the server holds a hidden word of the day and
// plays the feedback side itself, so users can train against the
// assistant without a second device. Endpoints under /practice:
//   - POST /practice/new         → start (or resume) today's run
//   - POST /practice/guess       → submit a word; server returns feedback
//   - GET  /practice/leaderboard → top results for today (or ?date=)
//
// Each authenticated user gets one recorded result per day; anonymous
// players can train but are not ranked. Word selection is deterministic
// from date + salt.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mhollowell/winnow/internal/practice"
	"github.com/mhollowell/winnow/internal/session"
	"github.com/mhollowell/winnow/internal/solver"
	"github.com/mhollowell/winnow/internal/words"
)

// practiceServer wraps dependencies for /practice endpoints.
type practiceServer struct {
	srv   *Server
	store *practice.Store
	salt  string

	mu   sync.Mutex              // guards runs
	runs map[string]*practiceRun // active runs keyed by owner|date
}

// practiceRun holds transient state for an in-progress daily run.
type practiceRun struct {
	Owner    string
	Date     string
	Index    int
	Answer   string
	Start    time.Time
	Guesses  int
	Sess     *session.Session
	Finished bool
}

// mountPractice registers all /practice routes.
func (s *Server) mountPractice(r chi.Router) {
	ps := &practiceServer{
		srv:   s,
		store: practice.NewStore(s.db),
		salt:  getEnv("PRACTICE_SALT", "winnow_practice"),
		runs:  make(map[string]*practiceRun),
	}
	r.Post("/practice/new", ps.handleNew)
	r.Post("/practice/guess", ps.handleGuess)
	r.Get("/practice/leaderboard", ps.handleLeaderboard)
}

// owner returns the stable identity for the caller: user ID when logged
// in, anonymous cookie otherwise.
func (ps *practiceServer) owner(w http.ResponseWriter, r *http.Request) (string, *authUser) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	if me != nil {
		return me.ID, me
	}
	return ps.srv.ensureAnonID(w, r), nil
}

type practiceNewRes struct {
	Date      string                 `json:"date"`
	Length    int                    `json:"length"`
	Remaining int                    `json:"remaining"`
	Guesses   int                    `json:"guesses"`
	Played    bool                   `json:"played"` // already recorded today
	Recommend *solver.Recommendation `json:"recommend,omitempty"`
}

func (ps *practiceServer) handleNew(w http.ResponseWriter, r *http.Request) {
	ownerID, me := ps.owner(w, r)
	date := practice.DateKey(time.Now())

	if me != nil {
		if played, err := ps.store.AlreadyPlayed(r.Context(), me.ID, date); err == nil && played {
			_ = json.NewEncoder(w).Encode(practiceNewRes{Date: date, Played: true})
			return
		}
	}

	list, err := words.Load(5)
	if err != nil {
		log.Error().Err(err).Msg("load word list")
		http.Error(w, `{"error":"no_word_list"}`, http.StatusInternalServerError)
		return
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()
	key := ownerID + "|" + date
	run, ok := ps.runs[key]
	if !ok {
		idx := practice.WordIndex(time.Now(), ps.salt, len(list))
		run = &practiceRun{
			Owner:  ownerID,
			Date:   date,
			Index:  idx,
			Answer: list[idx],
			Start:  time.Now(),
			Sess:   session.New(5, list),
		}
		ps.runs[key] = run
	}

	res := practiceNewRes{Date: date, Length: 5, Remaining: run.Sess.Remaining(), Guesses: run.Guesses}
	if rec, err := run.Sess.Recommend(); err == nil {
		res.Recommend = &rec
	}
	_ = json.NewEncoder(w).Encode(res)
}

type practiceGuessReq struct {
	Guess string `json:"guess"`
}
type practiceGuessRes struct {
	Tiles     []tileJSON             `json:"tiles"`
	Remaining int                    `json:"remaining"`
	Won       bool                   `json:"won"`
	Guesses   int                    `json:"guesses"`
	Recommend *solver.Recommendation `json:"recommend,omitempty"`
}

func (ps *practiceServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req practiceGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	ownerID, me := ps.owner(w, r)
	date := practice.DateKey(time.Now())

	ps.mu.Lock()
	run, ok := ps.runs[ownerID+"|"+date]
	ps.mu.Unlock()
	if !ok {
		http.Error(w, `{"error":"no_active_run"}`, http.StatusNotFound)
		return
	}
	if run.Finished {
		http.Error(w, `{"error":"already_finished"}`, http.StatusConflict)
		return
	}

	guess := strings.ToLower(strings.TrimSpace(req.Guess))
	correct, misplaced := solver.Feedback(run.Answer, guess)
	result, err := run.Sess.ApplyGuess(guess, correct, misplaced)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	run.Guesses++

	won := guess == run.Answer
	if won {
		run.Finished = true
		if me != nil {
			elapsed := int(time.Since(run.Start).Milliseconds())
			err := ps.store.InsertResult(r.Context(), practice.Result{
				UserID:    me.ID,
				Date:      run.Date,
				WordIndex: run.Index,
				Guesses:   run.Guesses,
				ElapsedMs: elapsed,
			})
			if err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("record practice result")
			}
		}
	}

	res := practiceGuessRes{
		Tiles:     tilesJSON(result.Tiles),
		Remaining: result.Remaining,
		Won:       won,
		Guesses:   run.Guesses,
	}
	if !won {
		if rec, err := run.Sess.Recommend(); err == nil {
			res.Recommend = &rec
		}
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (ps *practiceServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = practice.DateKey(time.Now())
	}
	rows, err := ps.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard query")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []practice.LBRow{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"date": date, "results": rows})
}
