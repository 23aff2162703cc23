// internal/httpserver/persist.go
//
// Best-effort database persistence of session history. Failures are
// logged and never surfaced to the client; a server running without a
// database skips all of this.

package httpserver

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mhollowell/winnow/internal/session"
)

// persistNewSession inserts an owner row (user or anonymous) for history.
func (s *Server) persistNewSession(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if s.db == nil {
		return
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		if _, err := s.db.Exec(`INSERT INTO sessions (id, user_id, length, started_at, status, guesses)
		                        VALUES (?,?,?,?,?,0)`, sess.ID, me.ID, sess.Length, now, "open"); err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("insert user session row")
		}
	} else {
		anon := s.ensureAnonID(w, r)
		if _, err := s.db.Exec(`INSERT INTO sessions (id, anonymous_id, length, started_at, status, guesses)
		                        VALUES (?,?,?,?,?,0)`, sess.ID, anon, sess.Length, now, "open"); err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("insert anon session row")
		}
	}
}

// persistGuess bumps the guess counter and, on a terminal state, closes
// the session row and updates user stats inside one transaction.
func (s *Server) persistGuess(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if s.db == nil {
		return
	}
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	ownerClause := `anonymous_id=?`
	ownerArg := any(s.ensureAnonID(w, r))
	if me != nil {
		ownerClause = `user_id=?`
		ownerArg = any(me.ID)
	}

	tx, err := s.db.Begin()
	if err != nil {
		log.Warn().Err(err).Msg("begin persist tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE sessions SET guesses = guesses + 1 WHERE id=? AND `+ownerClause, sess.ID, ownerArg); err != nil {
		log.Warn().Err(err).Msg("update guesses")
	}

	status := ""
	switch {
	case sess.Solved:
		status = "solved"
	case sess.Remaining() == 0:
		status = "exhausted"
	}
	if status != "" {
		if _, err := tx.Exec(`UPDATE sessions SET status=?, finished_at=? WHERE id=? AND `+ownerClause,
			status, time.Now().UTC().Format(time.RFC3339), sess.ID, ownerArg); err != nil {
			log.Warn().Err(err).Msg("finish session")
		}
		if me != nil {
			if err := s.bumpStats(tx, me.ID, status == "solved"); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
			}
		}
	}
	_ = tx.Commit()
}

// bumpStats increments sessions played and, on a solve, the solved count
// and streak; a dead end resets the streak. Runs within the caller's tx.
func (s *Server) bumpStats(tx *sql.Tx, userID string, solved bool) error {
	var played, done, streak int
	row := tx.QueryRow(`SELECT sessions_played, solved, streak FROM users WHERE id=?`, userID)
	if err := row.Scan(&played, &done, &streak); err != nil {
		return err
	}
	played++
	if solved {
		done++
		streak++
	} else {
		streak = 0
	}
	_, err := tx.Exec(`UPDATE users SET sessions_played=?, solved=?, streak=? WHERE id=?`, played, done, streak, userID)
	return err
}
