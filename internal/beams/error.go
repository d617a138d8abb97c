package beams

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid matches every [MalformedGridError] through [errors.Is].
var ErrMalformedGrid = errors.New("malformed grid")

// ErrNoStart is returned by both engines when the grid has no Start cell.
var ErrNoStart = MalformedGridError{Reason: "no start found"}

type MalformedGridError struct {
	Reason string
	Line   int // 1-based, 0 when the error is not tied to a position
	Column int
}

// [MalformedGridError] implements [error]
func (e MalformedGridError) Error() string {
	if e.Line == 0 {
		return "malformed grid: " + e.Reason
	}
	return fmt.Sprintf("malformed grid: %d:%d: %s", e.Line, e.Column, e.Reason)
}

func (e MalformedGridError) Is(target error) bool {
	return target == ErrMalformedGrid
}
