package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/roach88/bfc/internal/compiler"
	"github.com/roach88/bfc/internal/config"
	"github.com/roach88/bfc/internal/ir"
	"github.com/roach88/bfc/internal/opt"
)

// loadedProgram is a source file built into IR.
type loadedProgram struct {
	Path   string
	Source []byte
	Raw    ir.Program // as built
	Prog   ir.Program // Raw, or Raw after the optimizer when cfg.Optimize
}

// loadProgram reads and builds the program at path.
// Read and build failures are ExitCommandError.
func loadProgram(path string, cfg config.Config) (*loadedProgram, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("program not found: %s", path), err)
		}
		return nil, WrapExitError(ExitCommandError, "failed to read program", err)
	}

	raw, err := compiler.Build(src,
		compiler.WithFilename(path),
		compiler.WithMaxNesting(cfg.MaxNesting),
	)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid program", err)
	}

	lp := &loadedProgram{Path: path, Source: src, Raw: raw, Prog: raw}
	if cfg.Optimize {
		lp.Prog = opt.Run(raw)
	}
	return lp, nil
}

// countingReader counts the input bytes a program actually consumes.
// It implements io.ByteReader so backends read through it byte by byte
// instead of wrapping it in a second buffer.
//
// If out can be flushed it is flushed before every read that would block,
// so prompts reach the terminal before the program waits for input.
type countingReader struct {
	r   *bufio.Reader
	out interface{ Flush() error }
	n   int64
}

func newCountingReader(r io.Reader, out io.Writer) *countingReader {
	c := &countingReader{r: bufio.NewReader(r)}
	if f, ok := out.(interface{ Flush() error }); ok {
		c.out = f
	}
	return c
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.flush()
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func (c *countingReader) ReadByte() (byte, error) {
	c.flush()
	b, err := c.r.ReadByte()
	if err == nil {
		c.n++
	}
	return b, err
}

func (c *countingReader) flush() {
	if c.out != nil && c.r.Buffered() == 0 {
		_ = c.out.Flush()
	}
}

// countingWriter counts bytes accepted by w. When w buffers, the count
// is only final once flushOutput has removed what never reached the sink.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// flushOutput flushes w when it buffers and reports how many accepted
// bytes are still undelivered.
func flushOutput(w io.Writer) (pending int64, err error) {
	f, ok := w.(interface{ Flush() error })
	if !ok {
		return 0, nil
	}
	err = f.Flush()
	if b, ok := w.(interface{ Buffered() int }); ok {
		pending = int64(b.Buffered())
	}
	return pending, err
}
