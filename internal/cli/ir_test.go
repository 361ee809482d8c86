package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bfc/internal/compiler"
	"github.com/roach88/bfc/internal/ir"
)

func TestIR_Text(t *testing.T) {
	prog := writeFile(t, "mul.bf", "+++[>++<-]")

	res := bfc(t, "", "ir", "-O", prog)

	require.Equal(t, ExitSuccess, res.Code, res.Stderr)
	want := "IncValue(3, 0)\n" +
		"Loop [\n" +
		"  IncValue(-1, 0)\n" +
		"  IncValue(2, 1)\n" +
		"]\n" +
		"; 4 atoms, depth 1\n"
	assert.True(t, strings.HasPrefix(res.Stdout, want), res.Stdout)

	fp := ir.Fingerprint(compiler.MustBuild("+++[>++<-]"))
	assert.NotContains(t, res.Stdout, fp, "fingerprint must be of the printed, optimized program")
}

func TestIR_GroupsLargeCounts(t *testing.T) {
	prog := writeFile(t, "dots.bf", strings.Repeat(".", 1200))

	res := bfc(t, "", "ir", prog)

	require.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assert.Contains(t, res.Stdout, "; 1,200 atoms, depth 0\n")
}

func TestIR_JSON(t *testing.T) {
	prog := writeFile(t, "mul.bf", "+++[>++<-]")

	res := bfc(t, "", "--format", "json", "ir", prog)
	require.Equal(t, ExitSuccess, res.Code, res.Stderr)

	var resp struct {
		Status string    `json:"status"`
		Data   IRSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	raw := compiler.MustBuild("+++[>++<-]")
	assert.Equal(t, ir.Format(raw), resp.Data.Listing)
	assert.Equal(t, ir.Count(raw), resp.Data.Atoms)
	assert.Equal(t, 1, resp.Data.Depth)
	assert.Equal(t, ir.Fingerprint(raw), resp.Data.Fingerprint)
	assert.False(t, resp.Data.Optimized)
}
