package ecos

import (
	"errors"
	"fmt"
)

// Failure taxonomy. All four propagate to the caller and are never retried
// internally. They are distinct from StatusSolverError, which is a normal
// result value for a recognized-but-unsuccessful solver exit.
var (
	// ErrInvalidProblemShape reports a row-count or size mismatch in the
	// canonical problem, a contract violation by the upstream producer.
	ErrInvalidProblemShape = errors.New("invalid problem shape")

	// ErrUnsupportedConstraint reports a constraint kind ECOS cannot
	// handle, such as a semidefinite block.
	ErrUnsupportedConstraint = errors.New("unsupported constraint")

	// ErrUnknownExitCode reports a solver exit code outside the known
	// mapping. This indicates version skew between the adapter and the
	// solver binding and is never silently defaulted.
	ErrUnknownExitCode = errors.New("unknown exit code")

	// ErrSolverFailure reports that the native solver call itself failed
	// before producing a result.
	ErrSolverFailure = errors.New("solver invocation failed")
)

// Error wraps one of the taxonomy errors with context about which
// operation failed.
type Error struct {
	Op  string // Operation that failed (e.g., "Solve", "BuildProblemData")
	Err error  // Taxonomy sentinel, matched by errors.Is
	Msg string // Additional context
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("ecos: %s: %v: %s", e.Op, e.Err, e.Msg)
	}
	return fmt.Sprintf("ecos: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates an Error tagged with a taxonomy sentinel.
func newError(op string, kind error, msg string) error {
	return &Error{Op: op, Err: kind, Msg: msg}
}

// newErrorf is newError with a formatted message.
func newErrorf(op string, kind error, format string, args ...interface{}) error {
	return &Error{Op: op, Err: kind, Msg: fmt.Sprintf(format, args...)}
}
