package engine

import (
	"errors"
	"fmt"
)

// ExecutionError represents an error detected while running a program.
//
// Execution errors include:
//   - Empty input: a Read ran with the input exhausted
//   - I/O failure: the input or output resource failed
//   - Index out of bounds: address arithmetic left the tape (defensive)
//   - Nesting too deep: loop recursion exceeded the engine's bound
type ExecutionError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Index is the offending tape index (for INDEX_OUT_OF_BOUNDS).
	Index int

	// Err is the underlying resource error (for IO_ERROR).
	Err error
}

// ErrorCode categorizes execution errors.
type ErrorCode string

const (
	// ErrCodeEmptyInput indicates a Read with no input left.
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"

	// ErrCodeIO indicates the input or output resource failed.
	ErrCodeIO ErrorCode = "IO_ERROR"

	// ErrCodeIndexOutOfBounds indicates an address outside the tape.
	ErrCodeIndexOutOfBounds ErrorCode = "INDEX_OUT_OF_BOUNDS"

	// ErrCodeNestingTooDeep indicates loop recursion beyond the depth bound.
	ErrCodeNestingTooDeep ErrorCode = "NESTING_TOO_DEEP"
)

// Error kinds reported by Kind besides the ErrorCode values.
const (
	KindStepsExceeded = "STEPS_EXCEEDED"
	KindUnknown       = "UNKNOWN"
)

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying resource error, if any.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// NewEmptyInputError creates an ExecutionError for exhausted input.
func NewEmptyInputError() *ExecutionError {
	return &ExecutionError{
		Code:    ErrCodeEmptyInput,
		Message: "read with input exhausted",
	}
}

// NewIOError wraps a resource failure. op names the failing side ("read" or "write").
func NewIOError(op string, err error) *ExecutionError {
	return &ExecutionError{
		Code:    ErrCodeIO,
		Message: op + " failed",
		Err:     err,
	}
}

// NewIndexError creates an ExecutionError for an out-of-range tape index.
func NewIndexError(index int) *ExecutionError {
	return &ExecutionError{
		Code:    ErrCodeIndexOutOfBounds,
		Message: fmt.Sprintf("index %d outside tape", index),
		Index:   index,
	}
}

// NewNestingError creates an ExecutionError for exceeding the depth bound.
func NewNestingError(limit int) *ExecutionError {
	return &ExecutionError{
		Code:    ErrCodeNestingTooDeep,
		Message: fmt.Sprintf("loop nesting exceeds %d", limit),
	}
}

// HasCode returns true if err is an ExecutionError with the given code.
// Uses errors.As to handle wrapped errors.
func HasCode(err error, code ErrorCode) bool {
	var ee *ExecutionError
	if errors.As(err, &ee) {
		return ee.Code == code
	}
	return false
}

// IsEmptyInput returns true if the error is an EMPTY_INPUT error.
func IsEmptyInput(err error) bool {
	return HasCode(err, ErrCodeEmptyInput)
}

// IsIOError returns true if the error is an IO_ERROR.
func IsIOError(err error) bool {
	return HasCode(err, ErrCodeIO)
}

// Kind returns a stable string naming the kind of err.
//
// Two runs agree on behavior only if they agree on Kind: "" for success,
// the ErrorCode for execution errors, KindStepsExceeded for quota errors,
// and KindUnknown for anything else.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	var ee *ExecutionError
	if errors.As(err, &ee) {
		return string(ee.Code)
	}
	if IsStepsExceededError(err) {
		return KindStepsExceeded
	}
	return KindUnknown
}
