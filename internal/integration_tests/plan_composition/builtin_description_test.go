package integration_tests

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/golaunch/internal/app"
	"github.com/vk/golaunch/internal/testutil"
)

// manualDrivePrefixFiles materializes the resources the built-in
// manual-drive description resolves.
func manualDrivePrefixFiles() map[string]string {
	share := func(elem ...string) string {
		return filepath.Join(append([]string{"install", "share"}, elem...)...)
	}
	return map[string]string{
		share("kashiwanoha_map", "map", "lanelet2_map.osm"):          "<osm/>",
		share("cpp_mock_scenarios", "rviz", "view_kashiwanoha.rviz"): "{}",
		share("joy_to_vehicle_cmd", "launch", "joy_to_vehicle_cmd.launch.hcl"): `
			node "joy_node" {
				package    = "joy"
				executable = "joy_node"
			}
			node "joy_to_vehicle_cmd_node" {
				package    = "joy_to_vehicle_cmd"
				executable = "joy_to_vehicle_cmd_node"
			}
		`,
	}
}

func TestBuiltinManualDrive_ComposesFiveDirectives(t *testing.T) {
	t.Parallel()

	// --- Act ---
	result := testutil.RunComposeTest(t, app.Config{
		LaunchRef: "cpp_mock_scenarios/manual_drive_kashiwanoha",
	}, manualDrivePrefixFiles())

	// --- Assert ---
	require.NoError(t, result.Err)
	doc := decodePlan(t, result.Out)
	directives := doc["directives"].([]any)
	require.Len(t, directives, 5)

	first := directives[0].(map[string]any)
	require.Equal(t, "manual_kashiwanoha", first["name"])
	params := first["parameters"].(map[string]any)
	require.Equal(t, 8080, params["port"])
	require.Equal(t, 35.903555800615614, params["origin_latitude"])
	require.Equal(t, 139.93339979022568, params["origin_longitude"])

	last := directives[4].(map[string]any)
	require.Equal(t, "include", last["kind"])
}

func TestBuiltinManualDrive_FlattensJoystickSubLaunch(t *testing.T) {
	t.Parallel()

	// --- Act ---
	result := testutil.RunComposeTest(t, app.Config{
		LaunchRef: "cpp_mock_scenarios/manual_drive_kashiwanoha",
		Flatten:   true,
	}, manualDrivePrefixFiles())

	// --- Assert ---
	require.NoError(t, result.Err)
	doc := decodePlan(t, result.Out)
	directives := doc["directives"].([]any)
	// Four nodes from the description plus two from the joystick sub-launch.
	require.Len(t, directives, 6)
	for _, d := range directives {
		require.Equal(t, "node", d.(map[string]any)["kind"])
	}
	require.Equal(t, "joy_node", directives[4].(map[string]any)["name"])
	require.Equal(t, "joy_to_vehicle_cmd_node", directives[5].(map[string]any)["name"])
}

func TestUnknownReference_ListsKnownDescriptions(t *testing.T) {
	t.Parallel()

	result := testutil.RunComposeTest(t, app.Config{
		LaunchRef: "cpp_mock_scenarios/no_such_launch",
	}, nil)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "unknown launch description")
	require.Contains(t, result.Err.Error(), "cpp_mock_scenarios/manual_drive_kashiwanoha")
}
