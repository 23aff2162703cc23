// internal/solver/errors.go
//
// Sentinel errors shared by the solver core and its callers.
// All of them are recoverable: an operation that returns one of these
// leaves the candidate set exactly as it was.

package solver

import "errors"

var (
	// ErrIndexOutOfRange reports a position index outside [0, word length).
	ErrIndexOutOfRange = errors.New("position index out of range")

	// ErrPositionConflict reports a position claimed as both a correct
	// placement and a misplaced letter in the same guess.
	ErrPositionConflict = errors.New("position marked both correct and misplaced")

	// ErrNoCandidates reports a recommendation request against an empty
	// candidate set. The feedback given so far is inconsistent with the
	// dictionary, or the solution is not in it.
	ErrNoCandidates = errors.New("no candidates remain")

	// ErrMalformedInput reports external input (guess, letter, command)
	// that cannot be turned into valid arguments for the engine.
	ErrMalformedInput = errors.New("malformed input")
)
