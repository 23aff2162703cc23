// internal/solver/candidates.go
//
// The mutable working set of admissible words for one solving session.
// Responsibilities:
//   - Deduplicate and normalize the initial word list.
//   - Expose the four filtering primitives the constraint engine composes
//     (Require, Prune, RequireAt, PruneAt).
//   - Only ever shrink; every filter is a pure predicate over the set.

package solver

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"
)

// Candidates is the set of dictionary words still consistent with every
// constraint applied so far. All members share one fixed length.
type Candidates struct {
	length int
	words  mapset.Set // of string
}

// NewCandidates builds a candidate set from a word list. Input words are
// lowercased and deduplicated; words of the wrong length are skipped.
func NewCandidates(length int, list []string) *Candidates {
	c := &Candidates{length: length, words: mapset.NewSet()}
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if len([]rune(w)) == length {
			c.words.Add(w)
		}
	}
	return c
}

// Length returns the fixed word length of the set.
func (c *Candidates) Length() int { return c.length }

// Len returns the number of remaining candidates.
func (c *Candidates) Len() int { return c.words.Cardinality() }

// Contains reports whether word is still a candidate.
func (c *Candidates) Contains(word string) bool {
	return c.words.Contains(strings.ToLower(word))
}

// Words returns the remaining candidates in lexicographic order.
func (c *Candidates) Words() []string {
	out := make([]string, 0, c.words.Cardinality())
	c.words.Each(func(v interface{}) bool {
		out = append(out, v.(string))
		return false
	})
	sort.Strings(out)
	return out
}

// retain keeps only the words satisfying keep. Collecting removals first
// avoids mutating the set while iterating it.
func (c *Candidates) retain(keep func(word string) bool) {
	var drop []interface{}
	c.words.Each(func(v interface{}) bool {
		if !keep(v.(string)) {
			drop = append(drop, v)
		}
		return false
	})
	for _, v := range drop {
		c.words.Remove(v)
	}
}

// Require keeps only candidates containing ch anywhere.
func (c *Candidates) Require(ch rune) {
	c.retain(func(w string) bool { return strings.ContainsRune(w, ch) })
}

// Prune keeps only candidates not containing ch anywhere.
func (c *Candidates) Prune(ch rune) {
	c.retain(func(w string) bool { return !strings.ContainsRune(w, ch) })
}

// RequireAt keeps only candidates with ch at position i.
func (c *Candidates) RequireAt(ch rune, i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.requireAt(ch, i)
	return nil
}

// PruneAt keeps only candidates whose letter at position i differs from ch.
func (c *Candidates) PruneAt(ch rune, i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.pruneAt(ch, i)
	return nil
}

// requireAt/pruneAt are the unchecked forms used by the constraint engine,
// which only produces indices it derived from the tiles themselves.
func (c *Candidates) requireAt(ch rune, i int) {
	c.retain(func(w string) bool { return []rune(w)[i] == ch })
}

func (c *Candidates) pruneAt(ch rune, i int) {
	c.retain(func(w string) bool { return []rune(w)[i] != ch })
}

func (c *Candidates) checkIndex(i int) error {
	if i < 0 || i >= c.length {
		return fmt.Errorf("%w: %d (word length %d)", ErrIndexOutOfRange, i, c.length)
	}
	return nil
}
