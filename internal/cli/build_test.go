package cli

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Stdout(t *testing.T) {
	prog := writeFile(t, "h.bf", printH)

	res := bfc(t, "", "build", prog)

	require.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assert.Contains(t, res.Stdout, "#define TAPE_SIZE 30000")
	assert.Contains(t, res.Stdout, "int main(void)")
	assert.Contains(t, res.Stdout, "while (tape[ptr]) {")
}

func TestBuild_OutputFile(t *testing.T) {
	prog := writeFile(t, "clear.bf", "+++[-]")
	out := filepath.Join(t.TempDir(), "clear.c")

	res := bfc(t, "", "build", "-O", "-o", out, prog)

	require.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assert.Equal(t, "wrote "+out+"\n", res.Stdout)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "tape[at(ptr, 0)] = 0;")
	assert.NotContains(t, string(src), "while")
}

func TestBuild_CompileRequiresOutput(t *testing.T) {
	prog := writeFile(t, "h.bf", printH)

	res := bfc(t, "", "build", "--compile", prog)

	assert.Equal(t, ExitCommandError, res.Code)
	assert.Contains(t, res.Stderr, "--compile requires -o")
}

func TestBuild_CompileFailure(t *testing.T) {
	prog := writeFile(t, "h.bf", printH)
	out := filepath.Join(t.TempDir(), "h.c")

	res := bfc(t, "", "build", "-o", out, "--compile", "--cc", filepath.Join(t.TempDir(), "no-such-cc"), prog)

	assert.Equal(t, ExitFailure, res.Code)
	assert.Contains(t, res.Stderr, "no-such-cc failed")
}

func TestBuild_Compile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping C compilation in short mode")
	}
	if _, err := exec.LookPath("cc"); err != nil {
		t.Skip("no C compiler on PATH")
	}

	prog := writeFile(t, "h.bf", printH)
	dir := t.TempDir()
	out := filepath.Join(dir, "h.c")

	res := bfc(t, "", "--format", "json", "build", "-O", "-o", out, "--compile", "--cc", "cc", prog)
	require.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assert.Contains(t, res.Stdout, `"binary":"`+filepath.Join(dir, "h")+`"`)

	got, err := exec.Command(filepath.Join(dir, "h")).Output()
	require.NoError(t, err)
	assert.Equal(t, "H", string(got))
}

func TestBinaryPath(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"hello.c", "hello"},
		{"out/hello.c", "out/hello"},
		{"hello", "hello.out"},
		{".c", ".c.out"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, binaryPath(tt.source))
		})
	}
}
