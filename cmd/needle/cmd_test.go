package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given args, capturing output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Needle v")
	assert.Contains(t, out, "Go version:")
}

func TestListCommand_BuiltinSets(t *testing.T) {
	out, err := execute(t, "list", "--set", "shared")
	require.NoError(t, err)
	assert.Contains(t, out, "overlapping-abab")
	assert.Contains(t, out, "fingerprint")
}

func TestListCommand_UnknownSet(t *testing.T) {
	_, err := execute(t, "list", "--set", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown case set")
}

func TestRunCommand_CustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yml")
	data := "cases:\n  - name: cli-case\n    text: abababab\n    pattern: abab\n    expected: \"0,2,4\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := execute(t, "run", "--cases", path, "--trials", "1", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "cli-case")
	assert.Contains(t, out, "SUMMARY STATISTICS")
}

func TestSelectCommand_FixedAlgorithm(t *testing.T) {
	out, err := execute(t, "select", "--set", "shared", "--trials", "1", "--algorithm", "naive", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "SELECTION PERFORMANCE COMPARISON")
	assert.Contains(t, out, "naive")
}

func TestSelectCommand_UnknownAlgorithm(t *testing.T) {
	_, err := execute(t, "select", "--set", "shared", "--trials", "1", "--algorithm", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown algorithm")
}
