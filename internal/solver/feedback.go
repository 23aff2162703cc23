// internal/solver/feedback.go
//
// Feedback derivation for play against a known solution (practice mode
// and the autoplay benchmark). Deliberately uses the same presence model
// as the constraint engine rather than full per-letter counting, so the
// feedback it produces never contradicts the engine's own pruning.

package solver

import "strings"

// Feedback reports, for a guess against a known solution, the position
// index sets a player would be told: exact matches and letters present
// elsewhere in the solution. Positions in neither set are unused.
func Feedback(solution, guess string) (correct, misplaced []int) {
	lowered := strings.ToLower(solution)
	sol := []rune(lowered)
	i := 0
	for _, ch := range strings.ToLower(guess) {
		switch {
		case i < len(sol) && sol[i] == ch:
			correct = append(correct, i)
		case strings.ContainsRune(lowered, ch):
			misplaced = append(misplaced, i)
		}
		i++
	}
	return correct, misplaced
}
