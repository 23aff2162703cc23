// assist.go
//
// Interactive terminal assistant. The loop mirrors solving a real
// puzzle: type the guess you played, then the positions the puzzle
// marked correct and misplaced as digit strings (e.g. "04" for the
// first and fifth letters). Between guesses, constraints can also be
// injected directly:
//
//   list               show remaining candidates
//   best               show the recommended next guess
//   has <word>         is the word still a candidate?
//   prune <ch> [pos]   drop words with the letter (at a position)
//   require <ch> [pos] keep words with the letter (at a position)
//   quit               exit
//
// Bad input of any kind is reported and leaves the candidate set
// untouched.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mhollowell/winnow/internal/session"
	"github.com/mhollowell/winnow/internal/solver"
)

const candidateDisplay = 40 // cap on words printed per listing

func runAssist(length int, list []string) error {
	sess := session.New(length, list)
	in := bufio.NewReader(os.Stdin)

	fmt.Printf("%d candidates loaded\n", sess.Remaining())
	printRecommendation(sess)

	for sess.Remaining() > 1 {
		fmt.Printf("guesses so far: %v\n", sess.Guesses)
		line, err := prompt(in, "guess or command: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if line == "" {
			continue
		}
		if line == "quit" || line == "q" {
			return nil
		}

		if handled, err := runCommand(sess, line); handled {
			if err != nil {
				fmt.Println(">>", err)
			}
			continue
		}

		if err := runGuess(sess, in, line); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Println(">>", err)
			continue
		}

		printCandidates(sess)
		printRecommendation(sess)
	}

	switch sess.Remaining() {
	case 1:
		fmt.Println("solution:", sess.Candidates()[0])
	case 0:
		fmt.Println("no candidates remain; the feedback so far contradicts the dictionary")
	}
	return nil
}

// runGuess drives the guess flow: the word, then the two digit prompts.
func runGuess(sess *session.Session, in *bufio.Reader, guess string) error {
	correctLine, err := prompt(in, "  correct placement: ")
	if err != nil {
		return err
	}
	misplacedLine, err := prompt(in, "misplaced placement: ")
	if err != nil {
		return err
	}
	correct, err := parseDigits(correctLine)
	if err != nil {
		return err
	}
	misplaced, err := parseDigits(misplacedLine)
	if err != nil {
		return err
	}
	res, err := sess.ApplyGuess(guess, correct, misplaced)
	if err != nil {
		return err
	}
	fmt.Println(res.Remaining, "candidates remain")
	return nil
}

// runCommand dispatches the non-guess commands. It reports whether the
// line was a command at all.
func runCommand(sess *session.Session, line string) (bool, error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "list", "p":
		printCandidates(sess)
		return true, nil
	case "best":
		printRecommendation(sess)
		return true, nil
	case "has":
		if len(fields) != 2 {
			return true, fmt.Errorf("%w: usage: has <word>", solver.ErrMalformedInput)
		}
		fmt.Println(fields[1], "candidate:", sess.Contains(fields[1]))
		return true, nil
	case "prune", "require":
		return true, runConstraint(sess, fields)
	}
	// A single bare token is a guess, anything longer is a typo.
	if len(fields) != 1 {
		return true, fmt.Errorf("%w: unknown command %q", solver.ErrMalformedInput, fields[0])
	}
	return false, nil
}

func runConstraint(sess *session.Session, fields []string) error {
	if len(fields) != 2 && len(fields) != 3 {
		return fmt.Errorf("%w: usage: %s <letter> [position]", solver.ErrMalformedInput, fields[0])
	}
	var (
		remaining int
		err       error
	)
	if len(fields) == 2 {
		if fields[0] == "prune" {
			remaining, err = sess.Prune(fields[1])
		} else {
			remaining, err = sess.Require(fields[1])
		}
	} else {
		index, convErr := strconv.Atoi(fields[2])
		if convErr != nil {
			return fmt.Errorf("%w: position %q is not a number", solver.ErrMalformedInput, fields[2])
		}
		if fields[0] == "prune" {
			remaining, err = sess.PruneAt(fields[1], index)
		} else {
			remaining, err = sess.RequireAt(fields[1], index)
		}
	}
	if err != nil {
		return err
	}
	fmt.Println(remaining, "candidates remain")
	return nil
}

// parseDigits converts a digit string like "024" into position indices.
// An empty line means no positions.
func parseDigits(line string) ([]int, error) {
	var out []int
	for _, r := range line {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: positions must be digits, got %q", solver.ErrMalformedInput, r)
		}
		out = append(out, int(r-'0'))
	}
	return out, nil
}

func prompt(in *bufio.Reader, msg string) (string, error) {
	fmt.Print(msg)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.ToLower(line)), nil
}

func printCandidates(sess *session.Session) {
	list := sess.Candidates()
	if len(list) > candidateDisplay {
		fmt.Printf("%v ... (%d total)\n", list[:candidateDisplay], len(list))
		return
	}
	fmt.Println(list)
}

func printRecommendation(sess *session.Session) {
	rec, err := sess.Recommend()
	if err != nil {
		fmt.Println(">>", err)
		return
	}
	fmt.Printf("suggested: %s (score %d)\n", rec.Word, rec.Score)
}
