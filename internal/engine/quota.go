package engine

import (
	"errors"
	"fmt"
)

// QuotaEnforcer counts executed steps and enforces a maximum.
//
// A step is one atom executed; every loop-condition test after the first
// counts as one more step. The quota exists for hosts that run untrusted or
// generated programs: the language itself has no termination guarantee.
//
// A limit of 0 disables enforcement but steps are still counted.
type QuotaEnforcer struct {
	maxSteps int64 // Maximum allowed steps (0 = unlimited)
	current  int64 // Current step count
}

// NewQuotaEnforcer creates a new quota enforcer with the given limit.
func NewQuotaEnforcer(maxSteps int64) *QuotaEnforcer {
	return &QuotaEnforcer{
		maxSteps: maxSteps,
		current:  0,
	}
}

// Check increments the step counter and validates against the limit.
//
// Returns StepsExceededError if the quota is exceeded.
func (q *QuotaEnforcer) Check() error {
	q.current++
	if q.maxSteps > 0 && q.current > q.maxSteps {
		return &StepsExceededError{
			Steps: q.current,
			Limit: q.maxSteps,
		}
	}
	return nil
}

// Reset resets the step counter to 0.
func (q *QuotaEnforcer) Reset() {
	q.current = 0
}

// Current returns the current step count.
// Used for logging and run history.
func (q *QuotaEnforcer) Current() int64 {
	return q.current
}

// MaxSteps returns the maximum steps limit.
func (q *QuotaEnforcer) MaxSteps() int64 {
	return q.maxSteps
}

// StepsExceededError is returned when a run exceeds the step quota.
//
// Like every execution error it terminates the run; the partial output
// already written stays written.
type StepsExceededError struct {
	Steps int64 // Number of steps taken
	Limit int64 // Maximum allowed steps
}

// Error implements the error interface.
func (e *StepsExceededError) Error() string {
	return fmt.Sprintf("exceeded max steps quota: %d steps > %d limit", e.Steps, e.Limit)
}

// IsStepsExceededError returns true if the error is a StepsExceededError.
// Uses errors.As to handle wrapped errors.
func IsStepsExceededError(err error) bool {
	var se *StepsExceededError
	return errors.As(err, &se)
}
