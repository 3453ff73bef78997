package integration_tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/golaunch/internal/app"
	"github.com/vk/golaunch/internal/testutil"
	"gopkg.in/yaml.v3"
)

func TestRun_WritesPlanToOutputFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	outputPath := filepath.Join(t.TempDir(), "plan.yaml")
	files := map[string]string{
		"main.launch.hcl": `
			node "rviz2" {
				package    = "rviz2"
				executable = "rviz2"
				output     = "screen"
			}
		`,
	}

	// --- Act ---
	result := testutil.RunComposeTest(t, app.Config{
		LaunchRef:  "main.launch.hcl",
		OutputPath: outputPath,
	}, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Empty(t, result.Out, "plan must go to the file, not stdout")

	raw, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	directives := doc["directives"].([]any)
	require.Len(t, directives, 1)
	require.Equal(t, "rviz2", directives[0].(map[string]any)["name"])
}

func TestRun_JSONFormat(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.launch.hcl": `
			node "rviz2" {
				package    = "rviz2"
				executable = "rviz2"
			}
		`,
	}

	result := testutil.RunComposeTest(t, app.Config{
		LaunchRef: "main.launch.hcl",
		Format:    "json",
	}, files)

	require.NoError(t, result.Err)
	require.Contains(t, result.Out, `"kind": "node"`)
}
