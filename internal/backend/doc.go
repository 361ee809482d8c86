// Package backend turns IR programs into artifacts.
//
// A backend is a Visitor that receives a program one atom at a time in
// source order, with EnterLoop and ExitLoop bracketing every loop body,
// and a Finish method that yields the artifact. Dispatch drives a backend
// over a whole program.
//
// Three backends are provided:
//
//	Interpreter  executes atoms as they arrive on an engine.Engine
//	CBackend     emits a standalone C program
//	JIT          lowers the tree to flat code run by Module.Run
//
// All backends are single-use and not safe for concurrent use.
package backend
