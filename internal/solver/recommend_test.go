package solver

import (
	"errors"
	"testing"
)

func TestLetterCountsCountWordsNotOccurrences(t *testing.T) {
	c := NewCandidates(5, []string{"sheep", "speed", "crane"})
	counts := c.LetterCounts()
	// e appears in all three words; repeats within a word count once.
	if counts['e'] != 3 {
		t.Fatalf("expected e count 3, got %d", counts['e'])
	}
	if counts['s'] != 2 {
		t.Fatalf("expected s count 2, got %d", counts['s'])
	}
	if counts['z'] != 0 {
		t.Fatalf("expected z count 0, got %d", counts['z'])
	}
}

func TestRecommendIsMemberAndMaximal(t *testing.T) {
	c := NewCandidates(5, []string{"crane", "trace", "moody"})
	rec, err := c.Recommend()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Contains(rec.Word) {
		t.Fatalf("recommendation %q is not a candidate", rec.Word)
	}
	counts := c.LetterCounts()
	for _, w := range c.Words() {
		score := 0
		for _, ch := range w {
			score += counts[ch]
		}
		if score > rec.Score {
			t.Fatalf("word %q scores %d, above recommendation %q (%d)", w, score, rec.Word, rec.Score)
		}
	}
}

func TestRecommendTieBreakLexicographic(t *testing.T) {
	// Anagrams share letters, hence score; the smallest must win.
	c := NewCandidates(5, []string{"least", "slate", "steal", "tales"})
	rec, err := c.Recommend()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Word != "least" {
		t.Fatalf("expected lexicographic tie-break to pick least, got %q", rec.Word)
	}
}

func TestRecommendCountsRepeatedLetters(t *testing.T) {
	// e is common to eerie and crane; eerie banks its frequency three times.
	c := NewCandidates(5, []string{"eerie", "crane", "about"})
	rec, err := c.Recommend()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Word != "eerie" {
		t.Fatalf("expected eerie, got %q", rec.Word)
	}
}

func TestRecommendEmptySet(t *testing.T) {
	c := NewCandidates(5, nil)
	if _, err := c.Recommend(); !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}
