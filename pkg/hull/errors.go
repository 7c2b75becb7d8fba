package hull

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them; the concrete types below
// carry the details.
var (
	ErrDegenerateInput = errors.New("degenerate input")
	ErrRecursionLimit  = errors.New("recursion limit exceeded")
	ErrInvalidMesh     = errors.New("invalid mesh")
)

// DegenerateInputError reports a point set that cannot span an initial
// tetrahedron.
type DegenerateInputError struct {
	Stage  string // "points", "diagonal", "triangle" or "tetrahedron"
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%v at %s: %s", ErrDegenerateInput, e.Stage, e.Reason)
}

func (e *DegenerateInputError) Unwrap() error {
	return ErrDegenerateInput
}

// RecursionLimitError reports subdivision that ran past one of its safety caps.
type RecursionLimitError struct {
	Limit string // "depth" or "faces"
	Max   int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("%v: %s cap %d reached", ErrRecursionLimit, e.Limit, e.Max)
}

func (e *RecursionLimitError) Unwrap() error {
	return ErrRecursionLimit
}
