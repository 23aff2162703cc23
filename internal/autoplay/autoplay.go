// internal/autoplay/autoplay.go
//
// Self-play benchmark for the assistant: for every word in the list,
// play a full game where the recommendation engine picks each guess and
// the feedback side is derived from the known solution. Useful for
// sanity-checking the heuristic and for comparing word lists.

package autoplay

import (
	"sort"

	"github.com/schollz/progressbar/v3"

	"github.com/mhollowell/winnow/internal/solver"
)

// Result is the outcome of one self-played game.
type Result struct {
	Solution string
	Guesses  int
	Solved   bool
}

// Summary aggregates a run.
type Summary struct {
	Games        int
	Solved       int
	TotalGuesses int         // over solved games only
	Distribution map[int]int // guess count → games
	Failures     []string    // solutions the heuristic never reached
}

// Run plays every word in list as the hidden solution. maxGuesses bounds
// each game; 0 means no bound beyond the list size.
func Run(length int, list []string, maxGuesses int, progress bool) Summary {
	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.Default(int64(len(list)))
	} else {
		bar = progressbar.DefaultSilent(int64(len(list)))
	}

	sum := Summary{Distribution: make(map[int]int)}
	for _, solution := range list {
		res := playOne(length, list, solution, maxGuesses)
		sum.Games++
		if res.Solved {
			sum.Solved++
			sum.TotalGuesses += res.Guesses
			sum.Distribution[res.Guesses]++
		} else {
			sum.Failures = append(sum.Failures, res.Solution)
		}
		_ = bar.Add(1)
	}
	sort.Strings(sum.Failures)
	return sum
}

// playOne drives a single game to completion.
func playOne(length int, list []string, solution string, maxGuesses int) Result {
	if maxGuesses <= 0 {
		maxGuesses = len(list)
	}
	c := solver.NewCandidates(length, list)
	for n := 1; n <= maxGuesses; n++ {
		rec, err := c.Recommend()
		if err != nil {
			// Feedback from a dictionary solution never empties the set,
			// but an inconsistent input list could.
			return Result{Solution: solution, Guesses: n - 1}
		}
		if rec.Word == solution {
			return Result{Solution: solution, Guesses: n, Solved: true}
		}
		correct, misplaced := solver.Feedback(solution, rec.Word)
		tiles, err := solver.Classify(rec.Word, correct, misplaced)
		if err != nil {
			return Result{Solution: solution, Guesses: n}
		}
		if err := c.Apply(tiles); err != nil {
			return Result{Solution: solution, Guesses: n}
		}
	}
	return Result{Solution: solution, Guesses: maxGuesses}
}
