package testutil

import "io"

// FailingWriter accepts Limit bytes, then fails every write with Err.
type FailingWriter struct {
	W     io.Writer
	Limit int
	Err   error

	written int
}

// Write implements io.Writer.
func (f *FailingWriter) Write(p []byte) (int, error) {
	if f.written+len(p) > f.Limit {
		return 0, f.Err
	}
	f.written += len(p)
	if f.W == nil {
		return len(p), nil
	}
	return f.W.Write(p)
}
