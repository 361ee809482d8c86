package backend

import (
	"fmt"

	"github.com/roach88/bfc/internal/ir"
)

//go:generate mockgen -source=visitor.go -destination=mock_visitor_test.go -package=backend

// Visitor receives a program atom by atom.
//
// Calls arrive in source order. A loop appears as EnterLoop, the body's
// calls, then ExitLoop. Returning an error stops the walk.
type Visitor interface {
	MovePtr(offset int) error
	SetValue(value uint8, offset int) error
	IncValue(delta int8, offset int) error
	Print(offset int) error
	Read(offset int) error
	EnterLoop() error
	ExitLoop() error
}

// Walk feeds p to v, stopping at the first error.
func Walk(v Visitor, p ir.Program) error {
	_, err := walk(v, p)
	return err
}

// walk returns the name of the visitor method that failed alongside its
// error.
func walk(v Visitor, p ir.Program) (string, error) {
	for _, a := range p {
		var (
			op  string
			err error
		)
		switch x := a.(type) {
		case ir.MovePtr:
			op, err = "MovePtr", v.MovePtr(x.Offset)
		case ir.SetValue:
			op, err = "SetValue", v.SetValue(x.Value, x.Offset)
		case ir.IncValue:
			op, err = "IncValue", v.IncValue(x.Delta, x.Offset)
		case ir.Print:
			op, err = "Print", v.Print(x.Offset)
		case ir.Read:
			op, err = "Read", v.Read(x.Offset)
		case ir.Loop:
			if err := v.EnterLoop(); err != nil {
				return "EnterLoop", err
			}
			if op, err := walk(v, x.Body); err != nil {
				return op, err
			}
			op, err = "ExitLoop", v.ExitLoop()
		default:
			panic(fmt.Sprintf("backend: unknown atom %T", a))
		}
		if err != nil {
			return op, err
		}
	}
	return "", nil
}
