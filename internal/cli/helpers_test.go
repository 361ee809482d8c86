package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/bfc/internal/config"
)

// cliResult captures one bfc invocation.
type cliResult struct {
	Stdout string
	Stderr string
	Code   int
}

// bfc runs the root command with args and stdin, isolated from BFC_*
// variables in the test environment.
func bfc(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	return bfcEnv(t, nil, stdin, args...)
}

// bfcEnv is bfc with the given BFC_* variables set.
func bfcEnv(t *testing.T, vars map[string]string, stdin string, args ...string) cliResult {
	t.Helper()
	setEnv(t, vars)
	var stdout bytes.Buffer
	res := bfcTo(t, &stdout, stdin, args...)
	res.Stdout = stdout.String()
	return res
}

// setEnv replaces every BFC_* variable with its value in vars.
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, name := range []string{
		config.EnvBackend, config.EnvCC, config.EnvHistory,
		config.EnvMaxSteps, config.EnvMaxNesting,
	} {
		t.Setenv(name, vars[name])
	}
}

// bfcTo runs the root command with program output sent to stdout.
// Result.Stdout is left empty.
func bfcTo(t *testing.T, stdout io.Writer, stdin string, args ...string) cliResult {
	t.Helper()
	var stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	code := Execute(cmd)
	return cliResult{Stderr: stderr.String(), Code: code}
}

// writeFile writes content to name inside a fresh temp dir.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const (
	// printH prints "H": 8 * 9 = 72.
	printH = "++++++++[>+++++++++<-]>."
	cat    = ",[.,]"
)
