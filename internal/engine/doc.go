// Package engine implements the bfc reference execution engine.
//
// The engine defines the operational semantics of the IR. Every backend and
// every optimization pass is checked against it: for any program and input,
// a backend must produce the same output bytes and the same error kind.
//
// STATE:
//
// A fixed circular tape of ir.TapeSize byte cells, a pointer into it, a
// buffered input source, and an output sink. All state belongs to one Engine
// value; there is no process-wide state.
//
// EXECUTION:
//
// Atoms run in sequence on the calling goroutine. A Loop re-tests the cell
// under the physical pointer before every iteration, including the first.
// The first error halts execution; the tape is observable afterwards but the
// engine cannot be resumed.
//
// LIMITS:
//
// Loop recursion depth is bounded (WithMaxDepth, default
// ir.DefaultMaxNesting). Hosts that need termination guarantees set a step
// quota with WithMaxSteps; the engine itself has no notion of wall-clock time.
package engine
