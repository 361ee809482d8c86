package cli

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/bfc/internal/compiler"
	"github.com/roach88/bfc/internal/config"
	"github.com/roach88/bfc/internal/engine"
	"github.com/roach88/bfc/internal/ir"
)

func TestRoot_InvalidFormat(t *testing.T) {
	prog := writeFile(t, "h.bf", printH)

	res := bfc(t, "", "--format", "xml", "run", prog)

	assert.Equal(t, ExitCommandError, res.Code)
	assert.Contains(t, res.Stderr, "Error [E001]")
	assert.Contains(t, res.Stderr, `invalid format "xml"`)
	assert.Empty(t, res.Stdout)
}

func TestRoot_ConfigFile(t *testing.T) {
	prog := writeFile(t, "h.bf", printH)
	cfg := writeFile(t, "bfc.cue", "backend: \"jit\"\noptimize: true\n")

	res := bfc(t, "", "--config", cfg, "--verbose", "run", prog)

	assert.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assert.Equal(t, "H", res.Stdout)
	assert.Contains(t, res.Stderr, "backend=jit")
	assert.Contains(t, res.Stderr, "optimized=true")
}

func TestRoot_InvalidConfig(t *testing.T) {
	prog := writeFile(t, "h.bf", printH)
	cfg := writeFile(t, "bfc.cue", "backend: \"vm\"\n")

	res := bfc(t, "", "--config", cfg, "run", prog)

	assert.Equal(t, ExitCommandError, res.Code)
	assert.Contains(t, res.Stderr, "failed to load config")
}

func TestRoot_EnvOverridesConfig(t *testing.T) {
	prog := writeFile(t, "loop.bf", "+[]")
	cfg := writeFile(t, "bfc.cue", "max_steps: 0\n")

	res := bfcEnv(t, map[string]string{config.EnvMaxSteps: "50"}, "", "--config", cfg, "run", prog)

	assert.Equal(t, ExitFailure, res.Code)
	assert.Contains(t, res.Stderr, "exceeded max steps quota")
}

func TestRoot_FlagOverridesEnv(t *testing.T) {
	prog := writeFile(t, "h.bf", printH)

	res := bfcEnv(t, map[string]string{config.EnvBackend: "jit"}, "", "--verbose", "run", "--type", "interpreter", prog)

	assert.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assert.Contains(t, res.Stderr, "backend=interpreter")
}

func TestRoot_Version(t *testing.T) {
	res := bfc(t, "", "--version")

	assert.Equal(t, ExitSuccess, res.Code)
	assert.Contains(t, res.Stdout, ir.ToolVersion)
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitFailure},
		{"exit_error", NewExitError(ExitCommandError, "bad flag"), ExitCommandError},
		{"wrapped", fmt.Errorf("outer: %w", NewExitError(ExitEmptyInput, "empty input")), ExitEmptyInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestErrorCode(t *testing.T) {
	_, buildErr := compiler.BuildString("[")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not_found", WrapExitError(ExitCommandError, "x", os.ErrNotExist), ErrCodeNotFound},
		{"build", WrapExitError(ExitCommandError, "invalid program", buildErr), ErrCodeBuildFailed},
		{"exec", WrapExitError(ExitEmptyInput, "empty input", engine.NewEmptyInputError()), ErrCodeExecFailed},
		{"generic", errors.New("boom"), ErrCodeGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorCode(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	assert.Equal(t, "bad flag", NewExitError(ExitCommandError, "bad flag").Error())

	inner := errors.New("no such file")
	err := WrapExitError(ExitCommandError, "failed to read program", inner)
	assert.Equal(t, "failed to read program: no such file", err.Error())
	assert.ErrorIs(t, err, inner)
}
