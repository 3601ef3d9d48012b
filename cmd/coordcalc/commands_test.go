package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTypeFlag registers the persistent root flags a standalone test
// command needs.
func withTypeFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().StringVarP(&elemType, "type", "t", "float64", "Element type")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	return cmd
}

// newFormatCmd creates a fresh format command for testing
func newFormatCmd() *cobra.Command {
	return withTypeFlag(&cobra.Command{Use: "format", Args: cobra.RangeArgs(2, 3), RunE: runFormat})
}

// newEvalCmd creates a fresh eval command for testing
func newEvalCmd() *cobra.Command {
	return withTypeFlag(&cobra.Command{Use: "eval", Args: cobra.ExactArgs(3), RunE: runEval})
}

// newConvertCmd creates a fresh convert command for testing
func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "convert", Args: cobra.ExactArgs(1), RunE: runConvert}
	cmd.Flags().StringVar(&convertTo, "to", "int", "Target element type")
	return cmd
}

// newBatchCmd creates a fresh batch command for testing
func newBatchCmd() *cobra.Command {
	return withTypeFlag(&cobra.Command{Use: "batch", Args: cobra.ExactArgs(1), RunE: runBatch})
}

// execute runs cmd with args and returns stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestFormatCmd(t *testing.T) {
	out, _, err := execute(t, newFormatCmd(), "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "coord2(1,2)\n", out)

	out, _, err = execute(t, newFormatCmd(), "1.0", "2.0", "3.0")
	require.NoError(t, err)
	assert.Equal(t, "coord3(1,2,3)\n", out)

	_, _, err = execute(t, newFormatCmd(), "1")
	assert.Error(t, err)
}

func TestEvalCmd(t *testing.T) {
	out, _, err := execute(t, newEvalCmd(), "coord2(1,2)", "+", "coord2(3,4)")
	require.NoError(t, err)
	assert.Equal(t, "coord2(4,6)\n", out)

	out, errOut, err := execute(t, newEvalCmd(), "--type", "int", "-v", "coord2(7,9)", "/", "2")
	require.NoError(t, err)
	assert.Equal(t, "coord2(3,4)\n", out)
	assert.Contains(t, errOut, "type=int")

	_, _, err = execute(t, newEvalCmd(), "--type", "float64", "--verbose=false", "coord3(1,2,3)", "+", "1")
	require.ErrorIs(t, err, errUnsupported)
}

func TestEvalCmd_UnknownType(t *testing.T) {
	_, _, err := execute(t, newEvalCmd(), "--type", "decimal", "coord2(1,2)", "+", "1")
	require.ErrorIs(t, err, errUnknownType)
}

func TestConvertCmd(t *testing.T) {
	out, _, err := execute(t, newConvertCmd(), "coord2(3.7,-2.2)")
	require.NoError(t, err)
	assert.Equal(t, "coord2(3,-2)\n", out)

	out, _, err = execute(t, newConvertCmd(), "--to", "float32", "coord3(0.1,1,2)")
	require.NoError(t, err)
	assert.Equal(t, "coord3(0.1000000014901161,1,2)\n", out)
}

func TestConvertCmd_IntegerWrap(t *testing.T) {
	out, _, err := execute(t, newConvertCmd(), "--to", "int32", "coord2(3000000000,1)")
	require.NoError(t, err)
	assert.Equal(t, "coord2(-1294967296,1)\n", out)

	out, _, err = execute(t, newConvertCmd(), "--to", "int64", "coord2(9007199254740993,-9223372036854775807)")
	require.NoError(t, err)
	assert.Equal(t, "coord2(9007199254740993,-9223372036854775807)\n", out)
}

func TestCommandHelp_DocumentsBehavior(t *testing.T) {
	assert.Contains(t, evalCmd.Long, "x is accepted as an alias for *")
	assert.Contains(t, convertCmd.Long, "implementation-defined")
	assert.NotContains(t, convertCmd.Long, "out-of-range values wrap")
}

func writeBatch(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestBatchCmd(t *testing.T) {
	path := writeBatch(t, `type: int
ops:
  - {lhs: "coord2(1,2)", op: "+", rhs: "coord2(3,4)"}
  - {lhs: "coord2(8,6)", op: "/", rhs: "2"}
  - lhs: coord2(1,1)
    op: "*"
    rhs: "-3"
`)
	out, _, err := execute(t, newBatchCmd(), "--type", "float64", path)
	require.NoError(t, err)
	assert.Equal(t,
		"coord2(1,2) + coord2(3,4) = coord2(4,6)\n"+
			"coord2(8,6) / 2 = coord2(4,3)\n"+
			"coord2(1,1) * -3 = coord2(-3,-3)\n",
		out)
}

func TestBatchCmd_FallsBackToTypeFlag(t *testing.T) {
	path := writeBatch(t, `ops:
  - {lhs: "coord2(1,2)", op: "/", rhs: "4"}
`)
	out, _, err := execute(t, newBatchCmd(), "--type", "float64", path)
	require.NoError(t, err)
	assert.Equal(t, "coord2(1,2) / 4 = coord2(0.25,0.5)\n", out)
}

func TestBatchCmd_Errors(t *testing.T) {
	empty := writeBatch(t, "type: int\nops: []\n")
	_, _, err := execute(t, newBatchCmd(), empty)
	require.ErrorIs(t, err, errEmptyBatch)

	failing := writeBatch(t, `ops:
  - {lhs: "coord2(1,2)", op: "+", rhs: "1"}
  - {lhs: "coord3(1,2,3)", op: "+", rhs: "1"}
`)
	out, _, err := execute(t, newBatchCmd(), "--type", "float64", failing)
	require.ErrorIs(t, err, errUnsupported)
	assert.Contains(t, err.Error(), "op 2")
	assert.Equal(t, "coord2(1,2) + 1 = coord2(2,3)\n", out)

	_, _, err = execute(t, newBatchCmd(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runVersion(cmd, []string{}))

	output := buf.String()
	assert.Contains(t, output, "coordcalc v")
	assert.Contains(t, output, "Commit:")
	assert.Contains(t, output, "Go version:")
	assert.Contains(t, output, "OS/Arch:")
}

func TestConfigureColor(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	configureColor("always")
	assert.False(t, color.NoColor)
	configureColor("never")
	assert.True(t, color.NoColor)

	t.Setenv("NO_COLOR", "1")
	configureColor("auto")
	assert.True(t, color.NoColor)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"format", "eval", "convert", "batch", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
