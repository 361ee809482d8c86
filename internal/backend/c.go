package backend

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/bfc/internal/ir"
)

// EmptyInputStatus is the exit status of a generated C program that reads
// past the end of its input.
const EmptyInputStatus = 3

const cPrologue = `/* generated by bfc */
#include <stdio.h>
#include <stdlib.h>

#define TAPE_SIZE %d

static unsigned char tape[TAPE_SIZE];

static long at(long ptr, long offset)
{
	long i = (ptr + offset) %% TAPE_SIZE;
	return i < 0 ? i + TAPE_SIZE : i;
}

static unsigned char input(void)
{
	int c = getchar();
	if (c == EOF) {
		fputs("empty input\n", stderr);
		exit(%d);
	}
	return (unsigned char)c;
}

static void output(unsigned char c)
{
	if (putchar(c) == EOF) {
		fputs("write failed\n", stderr);
		exit(1);
	}
}

int main(void)
{
	long ptr = 0;

`

const cEpilogue = `	return 0;
}
`

// CBackend emits a standalone C translation of the program.
//
// The output is deterministic: the same program always yields the same
// source text.
type CBackend struct {
	w     io.Writer
	body  strings.Builder
	depth int
}

var _ Backend[string] = (*CBackend)(nil)

// NewC returns a C backend. If w is non-nil, Finish also writes the source
// to it.
func NewC(w io.Writer) *CBackend {
	return &CBackend{w: w}
}

// Name implements Namer.
func (b *CBackend) Name() string { return "c" }

func (b *CBackend) MovePtr(offset int) error {
	b.line("ptr = at(ptr, %d);", offset)
	return nil
}

func (b *CBackend) SetValue(value uint8, offset int) error {
	b.line("tape[at(ptr, %d)] = %d;", offset, value)
	return nil
}

func (b *CBackend) IncValue(delta int8, offset int) error {
	if delta < 0 {
		// -int(delta) so that -128 stays positive.
		b.line("tape[at(ptr, %d)] -= %d;", offset, -int(delta))
		return nil
	}
	b.line("tape[at(ptr, %d)] += %d;", offset, delta)
	return nil
}

func (b *CBackend) Print(offset int) error {
	b.line("output(tape[at(ptr, %d)]);", offset)
	return nil
}

func (b *CBackend) Read(offset int) error {
	b.line("tape[at(ptr, %d)] = input();", offset)
	return nil
}

func (b *CBackend) EnterLoop() error {
	b.line("while (tape[ptr]) {")
	b.depth++
	return nil
}

func (b *CBackend) ExitLoop() error {
	if b.depth == 0 {
		return ErrUnbalanced
	}
	b.depth--
	b.line("}")
	return nil
}

// Finish assembles the translation unit.
func (b *CBackend) Finish() (string, error) {
	if b.depth != 0 {
		return "", ErrUnbalanced
	}
	src := fmt.Sprintf(cPrologue, ir.TapeSize, EmptyInputStatus) + b.body.String() + cEpilogue
	if b.w != nil {
		if _, err := io.WriteString(b.w, src); err != nil {
			return "", fmt.Errorf("write C source: %w", err)
		}
	}
	return src, nil
}

func (b *CBackend) line(format string, args ...any) {
	b.body.WriteString(strings.Repeat("\t", b.depth+1))
	fmt.Fprintf(&b.body, format, args...)
	b.body.WriteByte('\n')
}
