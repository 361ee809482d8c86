// Package opt implements the bfc optimization pipeline.
//
// Every pass is a total function from Program to Program that preserves the
// engine's observable behavior: output bytes, input consumption, and the
// kind of error (if any) a run ends with. Passes never mutate their input;
// each returns a freshly allocated tree.
//
// The default pipeline runs, in order:
//
//	combine, clean, zero_loops, offset_op, reorder, combine, clean
//
// offset_op is the only pass that introduces nonzero offsets. It flushes
// pending pointer motion before every Loop, so a loop's offset-0 test
// always sees the physical pointer.
package opt
