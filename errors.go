package gllab

import (
	"errors"
	"fmt"
)

// Precondition failures of the transform helpers. They signal programmer error
// and are returned wrapped with the offending values.
var (
	ErrDegenerateBasis = errors.New("degenerate look-at basis")
	ErrInvalidFrustum  = errors.New("invalid frustum")
	ErrZeroAxis        = errors.New("zero-length rotation axis")
)

// ErrFileUnreadable is logged, never returned, when LoadOBJ falls back to the
// default cube.
var ErrFileUnreadable = errors.New("model file unreadable")

// ParseError reports a malformed line in an OBJ file.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, trimmed
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("obj line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
