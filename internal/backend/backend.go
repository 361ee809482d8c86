package backend

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/roach88/bfc/internal/ir"
)

// Backend is a Visitor that produces an artifact of type A once the whole
// program has been visited.
type Backend[A any] interface {
	Visitor
	Finish() (A, error)
}

// Unit is the artifact of backends whose work is a side effect.
type Unit struct{}

// Namer is implemented by backends that report a name in errors and logs.
type Namer interface {
	Name() string
}

// ErrUnbalanced is returned when ExitLoop has no matching EnterLoop, or
// Finish is reached with loops still open.
var ErrUnbalanced = errors.New("unbalanced loop")

// Error describes a backend failure.
type Error struct {
	Backend string // backend name, "unknown" if it has none
	Op      string // visitor method, or "Finish"
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s backend: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Dispatch walks p through b and returns b's artifact.
//
// Any failure is returned as *Error. Errors raised by the engine remain
// reachable through errors.As.
func Dispatch[A any](b Backend[A], p ir.Program) (A, error) {
	name := nameOf(b)
	slog.Debug("dispatching program", "backend", name, "atoms", ir.Count(p))

	var zero A
	if op, err := walk(b, p); err != nil {
		return zero, &Error{Backend: name, Op: op, Err: err}
	}
	artifact, err := b.Finish()
	if err != nil {
		return zero, &Error{Backend: name, Op: "Finish", Err: err}
	}
	return artifact, nil
}

func nameOf(v any) string {
	if n, ok := v.(Namer); ok {
		return n.Name()
	}
	return "unknown"
}
