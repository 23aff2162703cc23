// internal/solver/recommend.go
//
// Greedy next-guess selection. Words built from letters common across the
// remaining candidates are the most likely to produce further signal on
// the next round. This is a frequency heuristic, not an
// information-theoretic optimum.

package solver

// Recommendation is the suggested next guess and its frequency score.
type Recommendation struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// LetterCounts maps each letter to the number of candidate words
// containing it at least once. It is recomputed from scratch on every
// call; candidate sets are small enough that incremental maintenance is
// not worth the bookkeeping.
func (c *Candidates) LetterCounts() map[rune]int {
	counts := make(map[rune]int, 26)
	c.words.Each(func(v interface{}) bool {
		seen := make(map[rune]bool, c.length)
		for _, ch := range v.(string) {
			if !seen[ch] {
				seen[ch] = true
				counts[ch]++
			}
		}
		return false
	})
	return counts
}

// Recommend returns the candidate maximizing the sum of its letters'
// frequencies, counting repeated letters each time they occur. Ties are
// broken lexicographically so the result is deterministic. Asking for a
// recommendation from an empty set returns ErrNoCandidates.
func (c *Candidates) Recommend() (Recommendation, error) {
	if c.Len() == 0 {
		return Recommendation{}, ErrNoCandidates
	}
	counts := c.LetterCounts()
	var best Recommendation
	for _, w := range c.Words() {
		score := 0
		for _, ch := range w {
			score += counts[ch]
		}
		// Words() is sorted, so strict > keeps the smallest word on ties.
		if best.Word == "" || score > best.Score {
			best = Recommendation{Word: w, Score: score}
		}
	}
	return best, nil
}
