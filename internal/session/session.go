// internal/session/session.go
//
// One solving session: the candidate set being narrowed, the guess
// history, and the validation boundary between external input and the
// solver core. All engine operations are rejected before any state
// changes, so a failed call leaves the session exactly as it was.

package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mhollowell/winnow/internal/solver"
)

const defaultLength = 5

// Session holds the state of a single assisted solve.
type Session struct {
	ID         string   // unique session identifier (random hex string)
	Length     int      // fixed word length for this session
	Guesses    []string // guesses submitted so far, display only
	Solved     bool     // true once a single candidate remains
	candidates *solver.Candidates
}

// New constructs a session over the given word list. A non-positive
// length falls back to the classic five letters.
func New(length int, list []string) *Session {
	if length <= 0 {
		length = defaultLength
	}
	return &Session{
		ID:         randomID(),
		Length:     length,
		Guesses:    []string{},
		candidates: solver.NewCandidates(length, list),
	}
}

// GuessResult reports the outcome of one applied guess.
type GuessResult struct {
	Tiles     []solver.Tile
	Remaining int
	Solved    bool
}

// ApplyGuess validates a guess plus its feedback index sets, classifies
// the tiles, and applies the resulting constraints.
func (s *Session) ApplyGuess(guess string, correct, misplaced []int) (*GuessResult, error) {
	guess, err := s.normalizeWord(guess)
	if err != nil {
		return nil, err
	}
	tiles, err := solver.Classify(guess, correct, misplaced)
	if err != nil {
		return nil, err
	}
	if err := s.candidates.Apply(tiles); err != nil {
		return nil, err
	}
	s.Guesses = append(s.Guesses, guess)
	s.Solved = s.candidates.Len() == 1
	return &GuessResult{Tiles: tiles, Remaining: s.candidates.Len(), Solved: s.Solved}, nil
}

// Require keeps only candidates containing the letter.
func (s *Session) Require(letter string) (int, error) {
	ch, err := s.normalizeLetter(letter)
	if err != nil {
		return s.Remaining(), err
	}
	s.candidates.Require(ch)
	return s.Remaining(), nil
}

// Prune drops all candidates containing the letter.
func (s *Session) Prune(letter string) (int, error) {
	ch, err := s.normalizeLetter(letter)
	if err != nil {
		return s.Remaining(), err
	}
	s.candidates.Prune(ch)
	return s.Remaining(), nil
}

// RequireAt keeps only candidates with the letter at the given position.
func (s *Session) RequireAt(letter string, index int) (int, error) {
	ch, err := s.normalizeLetter(letter)
	if err != nil {
		return s.Remaining(), err
	}
	if err := s.candidates.RequireAt(ch, index); err != nil {
		return s.Remaining(), err
	}
	return s.Remaining(), nil
}

// PruneAt drops candidates with the letter at the given position.
func (s *Session) PruneAt(letter string, index int) (int, error) {
	ch, err := s.normalizeLetter(letter)
	if err != nil {
		return s.Remaining(), err
	}
	if err := s.candidates.PruneAt(ch, index); err != nil {
		return s.Remaining(), err
	}
	return s.Remaining(), nil
}

// Contains reports whether word is still admissible.
func (s *Session) Contains(word string) bool { return s.candidates.Contains(word) }

// Remaining returns the current candidate count.
func (s *Session) Remaining() int { return s.candidates.Len() }

// Candidates returns the remaining words in lexicographic order.
func (s *Session) Candidates() []string { return s.candidates.Words() }

// Recommend returns the frequency-heuristic suggestion for the next guess.
func (s *Session) Recommend() (solver.Recommendation, error) {
	return s.candidates.Recommend()
}

// normalizeWord lowercases and validates an external guess.
func (s *Session) normalizeWord(w string) (string, error) {
	w = strings.ToLower(strings.TrimSpace(w))
	if len([]rune(w)) != s.Length {
		return "", fmt.Errorf("%w: guess %q is not %d letters", solver.ErrMalformedInput, w, s.Length)
	}
	if !isAlpha(w) {
		return "", fmt.Errorf("%w: guess %q is not alphabetic", solver.ErrMalformedInput, w)
	}
	return w, nil
}

// normalizeLetter validates a single lowercase letter argument.
func (s *Session) normalizeLetter(letter string) (rune, error) {
	letter = strings.ToLower(strings.TrimSpace(letter))
	r := []rune(letter)
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return 0, fmt.Errorf("%w: %q is not a single letter", solver.ErrMalformedInput, letter)
	}
	return r[0], nil
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
