// Package harness provides conformance testing for bfc programs.
//
// A scenario names a program, its input, and the expected output and
// error kind. Run executes the program raw and optimized on every listed
// backend and checks that each run matches the expectation.
//
// # Scenario Format
//
//	name: cat_until_eof
//	description: "Echo input until it runs out"
//	source: "+[,.]"           # or file: programs/cat.bf
//	input: "ab"
//	expect:
//	  output: "ab"
//	  error: EMPTY_INPUT      # omit for a clean exit
//	backends: [interpreter]   # optional, default interpreter and jit
//	max_steps: 1000           # optional, default DefaultMaxSteps
//
// Unknown fields are rejected, so typos fail loudly.
//
// # Deterministic Testing
//
// Each Run records its runs in a fresh in-memory store with sequential
// IDs, so results are identical across executions. RunWithGolden also
// compares the optimized IR listing against testdata/golden/<name>.golden.
package harness
