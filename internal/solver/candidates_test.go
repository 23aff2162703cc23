package solver

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewCandidatesNormalizes(t *testing.T) {
	c := NewCandidates(5, []string{"CRANE", "crane", " slate ", "too-long-word", "cat"})
	if c.Len() != 2 {
		t.Fatalf("expected 2 candidates, got %d: %v", c.Len(), c.Words())
	}
	if !c.Contains("crane") || !c.Contains("SLATE") {
		t.Fatal("expected case-insensitive membership")
	}
	if c.Contains("cat") {
		t.Fatal("wrong-length word admitted")
	}
}

func TestWordsSorted(t *testing.T) {
	c := NewCandidates(5, []string{"trace", "crane", "slate"})
	want := []string{"crane", "slate", "trace"}
	if got := c.Words(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRequireAtSoundness(t *testing.T) {
	c := NewCandidates(5, []string{"crane", "crabs", "slate", "caper"})
	if err := c.RequireAt('c', 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, w := range c.Words() {
		if w[0] != 'c' {
			t.Fatalf("word %q survived RequireAt('c', 0)", w)
		}
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 survivors, got %v", c.Words())
	}
}

func TestPruneAndRequire(t *testing.T) {
	c := NewCandidates(5, []string{"crane", "slate", "moody"})
	c.Require('e')
	if c.Contains("moody") {
		t.Fatal("Require('e') should drop moody")
	}
	c.Prune('r')
	if c.Contains("crane") {
		t.Fatal("Prune('r') should drop crane")
	}
	if !c.Contains("slate") {
		t.Fatal("slate should survive")
	}
}

func TestPruneAtIndexChecked(t *testing.T) {
	c := NewCandidates(5, []string{"crane"})
	if err := c.PruneAt('c', 9); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if c.Len() != 1 {
		t.Fatal("rejected operation must leave the set unchanged")
	}
}
