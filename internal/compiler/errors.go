package compiler

import (
	"errors"
	"fmt"
)

// Error codes for source build failures.
const (
	ErrCodeUnmatchedOpen  = "UNMATCHED_OPEN"
	ErrCodeUnmatchedClose = "UNMATCHED_CLOSE"
	ErrCodeNestingTooDeep = "NESTING_TOO_DEEP"
)

// Pos is a position in the source. Line and Column are 1-based;
// Offset is the 0-based byte offset.
type Pos struct {
	Filename string
	Line     int
	Column   int
	Offset   int
}

// String formats the position as file:line:col (file omitted when empty).
func (p Pos) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// CompileError reports why a source could not be built.
type CompileError struct {
	Code    string
	Message string
	Pos     Pos
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Code, e.Message)
}

// IsCompileError returns true if err is (or wraps) a CompileError.
func IsCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}
