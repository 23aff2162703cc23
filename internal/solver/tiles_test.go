package solver

import (
	"errors"
	"testing"
)

func TestClassifyStates(t *testing.T) {
	tiles, err := Classify("crane", []int{0, 3}, []int{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tiles) != 5 {
		t.Fatalf("expected 5 tiles, got %d", len(tiles))
	}
	want := []TileState{TileCorrect, TileMisplaced, TileUnused, TileCorrect, TileUnused}
	for i, tile := range tiles {
		if tile.State != want[i] {
			t.Errorf("tile %d: got %v, want %v", i, tile.State, want[i])
		}
		if tile.Letter != []rune("crane")[i] {
			t.Errorf("tile %d: letter %q", i, tile.Letter)
		}
	}
}

func TestClassifyNoUncheckedEscapes(t *testing.T) {
	tiles, err := Classify("slate", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, tile := range tiles {
		if tile.State != TileUnused {
			t.Fatalf("tile %d: expected unused, got %v", i, tile.State)
		}
	}
}

func TestClassifyIndexOutOfRange(t *testing.T) {
	if _, err := Classify("crane", []int{5}, nil); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := Classify("crane", nil, []int{-1}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestClassifyConflict(t *testing.T) {
	if _, err := Classify("crane", []int{2}, []int{2}); !errors.Is(err, ErrPositionConflict) {
		t.Fatalf("expected ErrPositionConflict, got %v", err)
	}
}
