package session

import (
	"errors"
	"testing"

	"github.com/mhollowell/winnow/internal/solver"
)

var testWords = []string{"crane", "slate", "trace", "grate", "poser"}

func TestNewSession(t *testing.T) {
	s := New(5, testWords)
	if s.ID == "" {
		t.Fatal("expected session to have an ID")
	}
	if s.Remaining() != len(testWords) {
		t.Fatalf("expected %d candidates, got %d", len(testWords), s.Remaining())
	}
	if len(s.Guesses) != 0 {
		t.Fatal("expected empty guess history")
	}
}

func TestApplyGuessRecordsHistory(t *testing.T) {
	s := New(5, testWords)
	res, err := s.ApplyGuess("CRANE", []int{2}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Guesses) != 1 || s.Guesses[0] != "crane" {
		t.Fatalf("expected lowercased guess in history, got %v", s.Guesses)
	}
	if res.Remaining != s.Remaining() {
		t.Fatal("result remaining disagrees with session")
	}
}

func TestApplyGuessMalformed(t *testing.T) {
	s := New(5, testWords)
	before := s.Remaining()

	if _, err := s.ApplyGuess("cat", nil, nil); !errors.Is(err, solver.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for short guess, got %v", err)
	}
	if _, err := s.ApplyGuess("cr4ne", nil, nil); !errors.Is(err, solver.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for non-alphabetic guess, got %v", err)
	}
	if _, err := s.ApplyGuess("crane", []int{7}, nil); !errors.Is(err, solver.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := s.ApplyGuess("crane", []int{1}, []int{1}); !errors.Is(err, solver.ErrPositionConflict) {
		t.Fatalf("expected ErrPositionConflict, got %v", err)
	}

	if s.Remaining() != before || len(s.Guesses) != 0 {
		t.Fatal("rejected guesses must leave the session unchanged")
	}
}

func TestManualConstraints(t *testing.T) {
	s := New(5, testWords)
	if _, err := s.Prune("r"); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if s.Contains("crane") || s.Contains("trace") || s.Contains("grate") || s.Contains("poser") {
		t.Fatalf("prune r left %v", s.Candidates())
	}
	if !s.Contains("slate") {
		t.Fatal("slate should survive prune r")
	}

	n, err := s.RequireAt("s", 0)
	if err != nil {
		t.Fatalf("requireAt: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 candidate, got %d", n)
	}

	if _, err := s.Require("xx"); !errors.Is(err, solver.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for two-letter argument, got %v", err)
	}
	if _, err := s.PruneAt("s", 9); !errors.Is(err, solver.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestSolvedFlag(t *testing.T) {
	s := New(5, []string{"crane", "crate"})
	res, err := s.ApplyGuess("crane", []int{0, 1, 2, 4}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Solved || !s.Solved {
		t.Fatalf("expected solved with one survivor, remaining %v", s.Candidates())
	}
	if s.Candidates()[0] != "crate" {
		t.Fatalf("expected crate, got %v", s.Candidates())
	}
}

func TestRecommendAfterEmpty(t *testing.T) {
	s := New(5, []string{"crane"})
	if _, err := s.Prune("c"); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if _, err := s.Recommend(); !errors.Is(err, solver.ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}
