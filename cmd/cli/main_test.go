package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(out, errOut, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InvalidLaunchFileReturnsError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A launch file with a syntax error must surface as a clean error, not
	// a crash.
	invalidHCL := `
		node "A" {
			package = "p"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.launch.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{filePath}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, errOut, args)

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ComposesPlanFromLaunchFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	launchHCL := `
		node "rviz2" {
			package    = "rviz2"
			executable = "rviz2"
			output     = "screen"
		}
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.launch.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(launchHCL), 0600))

	args := []string{"-log-level", "error", filePath}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	directives := doc["directives"].([]any)
	require.Len(t, directives, 1)
	require.Equal(t, "rviz2", directives[0].(map[string]any)["name"])
}
