// internal/solver/tiles.go
//
// Per-position classification of a guess relative to the unknown solution.
// A tile is derived fresh for each guess from two index sets supplied by
// the player ("correct placement" and "present but misplaced") and is
// discarded after the constraints it implies have been applied.

package solver

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// TileState is the classification of one letter position of a guess.
type TileState int

const (
	// tileUnchecked is the transient pre-classification state. It never
	// escapes Classify and is deliberately unexported.
	tileUnchecked TileState = iota

	// TileCorrect: the letter occupies this exact position in the solution.
	TileCorrect

	// TileMisplaced: the letter is in the solution, but not at this position.
	TileMisplaced

	// TileUnused: the letter is not part of the solution at all (subject to
	// the repeated-letter safeguard applied by the constraint engine).
	TileUnused
)

// String returns the wire/display name of the state.
func (s TileState) String() string {
	switch s {
	case TileCorrect:
		return "correct"
	case TileMisplaced:
		return "misplaced"
	case TileUnused:
		return "unused"
	}
	return "unchecked"
}

// Tile pairs a guessed letter with its classification.
type Tile struct {
	Letter rune
	State  TileState
}

// Classify converts a guess plus the two position index sets into an
// ordered tile sequence. Both sets must be subsets of [0, len(guess))
// and disjoint; violations are rejected without side effects.
func Classify(guess string, correct, misplaced []int) ([]Tile, error) {
	letters := []rune(guess)
	n := len(letters)

	cset, err := indexSet(correct, n)
	if err != nil {
		return nil, err
	}
	mset, err := indexSet(misplaced, n)
	if err != nil {
		return nil, err
	}
	if cset.IntersectionCardinality(mset) > 0 {
		return nil, fmt.Errorf("%w: guess %q", ErrPositionConflict, guess)
	}

	tiles := make([]Tile, n)
	for i, ch := range letters {
		tiles[i] = Tile{Letter: ch, State: tileUnchecked}
	}
	for i := range tiles {
		switch {
		case cset.Test(uint(i)):
			tiles[i].State = TileCorrect
		case mset.Test(uint(i)):
			tiles[i].State = TileMisplaced
		default:
			tiles[i].State = TileUnused
		}
	}
	return tiles, nil
}

// indexSet validates indices against [0, n) and packs them into a bitset.
// Duplicate indices within one set are harmless and collapse.
func indexSet(indices []int, n int) (*bitset.BitSet, error) {
	set := bitset.New(uint(n))
	for _, i := range indices {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: %d (word length %d)", ErrIndexOutOfRange, i, n)
		}
		set.Set(uint(i))
	}
	return set, nil
}
