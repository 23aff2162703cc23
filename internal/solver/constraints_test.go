package solver

import (
	"reflect"
	"testing"
)

func apply(t *testing.T, c *Candidates, guess string, correct, misplaced []int) {
	t.Helper()
	tiles, err := Classify(guess, correct, misplaced)
	if err != nil {
		t.Fatalf("classify %q: %v", guess, err)
	}
	if err := c.Apply(tiles); err != nil {
		t.Fatalf("apply %q: %v", guess, err)
	}
}

func TestCorrectTileKeepsMatches(t *testing.T) {
	c := NewCandidates(5, []string{"crane", "crabs", "slate"})
	apply(t, c, "comfy", []int{0}, nil)
	for _, w := range c.Words() {
		if w[0] != 'c' {
			t.Fatalf("word %q survived a correct 'c' at position 0", w)
		}
	}
	if c.Len() != 2 {
		t.Fatalf("expected crane and crabs to survive, got %v", c.Words())
	}
}

func TestMisplacedTileRequiresLetterElsewhere(t *testing.T) {
	c := NewCandidates(5, []string{"crane", "slate", "baste", "moody"})
	// s present but not at position 0; u, d, y unused.
	apply(t, c, "sudsy", nil, []int{0})
	if c.Contains("slate") {
		t.Fatal("slate has the misplaced s at its guessed position")
	}
	if c.Contains("crane") {
		t.Fatal("crane lacks the required s")
	}
	if c.Contains("moody") {
		t.Fatal("moody contains the unused letters d and y")
	}
	if !c.Contains("baste") {
		t.Fatalf("baste carries s away from position 0 and must survive, got %v", c.Words())
	}
}

// Guessing a word with a repeated letter where one occurrence is marked
// and the other is unused must not globally ban that letter.
func TestRepeatedLetterSafeguard(t *testing.T) {
	c := NewCandidates(5, []string{"sheep", "speed", "steep"})
	// Guess "speed": s and the first e misplaced, the second e (position 3)
	// unused. The e is marked, so only pruneAt(e, 3) applies, never a
	// global ban on e.
	apply(t, c, "speed", nil, []int{0, 2})
	// All three start with the misplaced s and carry an e at position 3;
	// the position prunes remove them without any global ban on e or s.
	if c.Len() != 0 {
		t.Fatalf("position prunes should have removed all: %v", c.Words())
	}
}

func TestRepeatedLetterSafeguardKeepsSingleOccurrence(t *testing.T) {
	// "raise" has one e; guess "speed" marks the first e misplaced and the
	// second unused. A global prune of e would wrongly kill "raise".
	c := NewCandidates(5, []string{"raise", "sheep"})
	apply(t, c, "speed", nil, []int{0, 2})
	if !c.Contains("raise") {
		t.Fatal("word with a single e must survive the unused duplicate e")
	}
	if c.Contains("sheep") {
		t.Fatal("sheep must be removed by the position prunes alone")
	}
}

func TestMonotonicShrinkage(t *testing.T) {
	c := NewCandidates(5, []string{"crane", "slate", "trace", "grate", "poser"})
	before := c.Len()
	apply(t, c, "slate", nil, []int{2, 4})
	if c.Len() > before {
		t.Fatalf("candidate set grew: %d -> %d", before, c.Len())
	}
}

func TestIdempotence(t *testing.T) {
	c := NewCandidates(5, []string{"crane", "slate", "trace", "grate", "poser"})
	tiles, err := Classify("crate", []int{4}, []int{0})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if err := c.Apply(tiles); err != nil {
		t.Fatalf("apply: %v", err)
	}
	once := c.Words()
	if err := c.Apply(tiles); err != nil {
		t.Fatalf("re-apply: %v", err)
	}
	if !reflect.DeepEqual(once, c.Words()) {
		t.Fatalf("re-applying identical tiles changed the set: %v -> %v", once, c.Words())
	}
}

// Narrowing to zero candidates is a valid outcome, not an engine error.
func TestNarrowToEmptySet(t *testing.T) {
	c := NewCandidates(5, []string{"crane", "slate", "trace", "grate"})
	// c correct at 0 and n correct at 3; r, a, e unused. Only "crane"
	// itself could match, and it is excluded by the unused prunes.
	apply(t, c, "crane", []int{0, 3}, nil)
	if c.Len() != 0 {
		t.Fatalf("expected empty set, got %v", c.Words())
	}
	if _, err := c.Recommend(); err == nil {
		t.Fatal("expected ErrNoCandidates after narrowing to empty")
	}
}

func TestApplyWrongTileCount(t *testing.T) {
	c := NewCandidates(5, []string{"crane"})
	tiles, err := Classify("hat", nil, nil)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if err := c.Apply(tiles); err == nil {
		t.Fatal("expected error for tile count mismatch")
	}
	if c.Len() != 1 {
		t.Fatal("rejected apply must leave the set unchanged")
	}
}
