// internal/solver/constraints.go
//
// The constraint engine: translates one guess's tile sequence into the
// filtering primitives of the candidate set and applies them.
//
// Repeated letters are the subtle part. If a guess holds the same letter
// twice and only one occurrence is marked unused, a blanket prune of that
// letter would wrongly eliminate solutions containing a single instance
// of it. The engine therefore collects the "marked" letters (those in a
// correct or misplaced tile of the same guess) before processing unused
// tiles, and falls back to position-only pruning for any unused letter
// that is also marked.

package solver

import "fmt"

// Apply filters the candidate set with the constraints implied by tiles.
// Per tile:
//   - correct    → keep words with the letter at that position
//   - misplaced  → drop words with the letter at that position, keep words
//     containing the letter somewhere
//   - unused     → drop words with the letter at that position, and drop
//     words containing the letter at all unless the letter is marked
//
// The individual predicates are pure filters over the same set, so their
// order among positions is irrelevant. Applying the same tile sequence
// again removes nothing further.
func (c *Candidates) Apply(tiles []Tile) error {
	if len(tiles) != c.length {
		return fmt.Errorf("%w: %d tiles for word length %d", ErrMalformedInput, len(tiles), c.length)
	}

	marked := make(map[rune]bool, len(tiles))
	for _, t := range tiles {
		if t.State == TileCorrect || t.State == TileMisplaced {
			marked[t.Letter] = true
		}
	}

	// Global prunes first: letters absent from the solution outright.
	for _, t := range tiles {
		if t.State == TileUnused && !marked[t.Letter] {
			c.Prune(t.Letter)
		}
	}

	for i, t := range tiles {
		switch t.State {
		case TileCorrect:
			c.requireAt(t.Letter, i)
		case TileMisplaced:
			c.pruneAt(t.Letter, i)
			c.Require(t.Letter)
		case TileUnused:
			c.pruneAt(t.Letter, i)
		default:
			return fmt.Errorf("%w: unclassified tile at position %d", ErrMalformedInput, i)
		}
	}
	return nil
}
