package testutil

import "fmt"

// SequentialIDGenerator returns predictable run IDs: "run-0001", "run-0002", ...
//
// It satisfies store.IDGenerator, so store tests can assert exact IDs
// instead of matching UUIDs.
type SequentialIDGenerator struct {
	prefix  string
	counter *Counter
}

// NewSequentialIDGenerator creates a generator with the given prefix.
// If prefix is empty, "run" is used.
func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	if prefix == "" {
		prefix = "run"
	}
	return &SequentialIDGenerator{prefix: prefix, counter: NewCounter()}
}

// Generate returns the next ID.
func (g *SequentialIDGenerator) Generate() string {
	return fmt.Sprintf("%s-%04d", g.prefix, g.counter.Next())
}
